package puzzles

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validPuzzleJSON = `{
	"version": 1,
	"count": 2,
	"puzzles": [
		{"params": "7x7b20s2", "descriptor": "a1aBaBaBaBaBaBaBa"},
		{"params": "7x7b20s2r", "descriptor": "a2aBaBaBaBaBaBaBa"}
	]
}`

func createTempPuzzleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_puzzles.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp puzzle file: %v", err)
	}
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)

	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loader.Count() != 2 {
		t.Errorf("expected 2 puzzles, got %d", loader.Count())
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/puzzles.json"); err == nil {
		t.Error("Load() should fail for a non-existent file")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := createTempPuzzleFile(t, "{ this is not valid json }")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed JSON")
	}
}

func TestLoad_EmptyPuzzleArray(t *testing.T) {
	path := createTempPuzzleFile(t, `{"version": 1, "count": 0, "puzzles": []}`)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loader.Count() != 0 {
		t.Errorf("expected 0 puzzles, got %d", loader.Count())
	}
}

func TestNewLoaderFromPuzzles(t *testing.T) {
	loader := NewLoaderFromPuzzles([]Entry{{Params: "7x7b20s2", Descriptor: "a1aBaBaBaBaBaBaBa"}})
	if loader.Count() != 1 {
		t.Errorf("expected 1 puzzle, got %d", loader.Count())
	}
}

func TestGetPuzzle_ValidIndex(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	p, desc, err := loader.GetPuzzle(0)
	if err != nil {
		t.Fatalf("GetPuzzle() failed: %v", err)
	}
	if p.Width != 7 || p.Height != 7 || p.BlackPercent != 20 {
		t.Fatalf("unexpected params: %+v", p)
	}
	if desc == "" {
		t.Fatal("expected a non-empty descriptor")
	}
}

func TestGetPuzzle_HardFlagDecoded(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	p, _, err := loader.GetPuzzle(1)
	if err != nil {
		t.Fatalf("GetPuzzle() failed: %v", err)
	}
	if !p.Hard {
		t.Fatal("expected the second fixture entry to decode as hard")
	}
}

func TestGetPuzzle_NegativeIndex(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, _, err := loader.GetPuzzle(-1); err == nil {
		t.Error("GetPuzzle() should fail for a negative index")
	}
}

func TestGetPuzzle_IndexOutOfBounds(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, _, err := loader.GetPuzzle(100); err == nil {
		t.Error("GetPuzzle() should fail for an out-of-bounds index")
	}
}

func TestGetPuzzleBySeed_Determinism(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	p1, d1, idx1, err := loader.GetPuzzleBySeed("test-seed-123")
	if err != nil {
		t.Fatalf("GetPuzzleBySeed() first call failed: %v", err)
	}
	p2, d2, idx2, err := loader.GetPuzzleBySeed("test-seed-123")
	if err != nil {
		t.Fatalf("GetPuzzleBySeed() second call failed: %v", err)
	}
	if idx1 != idx2 || p1 != p2 || d1 != d2 {
		t.Fatal("expected the same seed to return the same puzzle")
	}
}

func TestGetPuzzleBySeed_EmptyLoader(t *testing.T) {
	loader := NewLoaderFromPuzzles(nil)
	if _, _, _, err := loader.GetPuzzleBySeed("any-seed"); err == nil {
		t.Error("GetPuzzleBySeed() should fail with no puzzles loaded")
	}
}

func TestGetDailyPuzzle_Consistency(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	_, _, idx1, err := loader.GetDailyPuzzle(date)
	if err != nil {
		t.Fatalf("GetDailyPuzzle() first call failed: %v", err)
	}
	_, _, idx2, err := loader.GetDailyPuzzle(date)
	if err != nil {
		t.Fatalf("GetDailyPuzzle() second call failed: %v", err)
	}
	if idx1 != idx2 {
		t.Errorf("same date should return the same index, got %d and %d", idx1, idx2)
	}
}

func TestGetDailyPuzzle_TimeZoneNormalization(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	utcDate := time.Date(2024, 12, 25, 12, 0, 0, 0, time.UTC)
	pstLoc, _ := time.LoadLocation("America/Los_Angeles")
	pstDate := time.Date(2024, 12, 25, 4, 0, 0, 0, pstLoc) // same instant as UTC noon

	_, _, idx1, err := loader.GetDailyPuzzle(utcDate)
	if err != nil {
		t.Fatalf("GetDailyPuzzle() failed: %v", err)
	}
	_, _, idx2, err := loader.GetDailyPuzzle(pstDate)
	if err != nil {
		t.Fatalf("GetDailyPuzzle() failed: %v", err)
	}
	if idx1 != idx2 {
		t.Errorf("same UTC date should return the same puzzle: got %d and %d", idx1, idx2)
	}
}

func TestGetTodayPuzzle_ReturnsValidPuzzle(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	_, _, idx, err := loader.GetTodayPuzzle()
	if err != nil {
		t.Fatalf("GetTodayPuzzle() failed: %v", err)
	}
	if idx < 0 || idx >= 2 {
		t.Errorf("index out of range: %d", idx)
	}
}

func TestSetGlobal(t *testing.T) {
	original := Global()
	defer SetGlobal(original)

	testLoader := NewLoaderFromPuzzles([]Entry{{Params: "7x7b20s2", Descriptor: "a1aBaBaBaBaBaBaBa"}})
	SetGlobal(testLoader)

	if Global() != testLoader {
		t.Error("SetGlobal() did not set the global loader correctly")
	}
	if Global().Count() != 1 {
		t.Errorf("expected 1 puzzle in global loader, got %d", Global().Count())
	}
}
