package game

import (
	"strings"
	"testing"

	"akari-engine/internal/akari/rng"
	"akari-engine/internal/core"
	"akari-engine/pkg/constants"
)

func TestPresetsCoverExpectedDimensions(t *testing.T) {
	presets := Presets()
	if len(presets) != 6 {
		t.Fatalf("expected 6 presets (3 sizes x easy/hard), got %d", len(presets))
	}
	p, err := FetchPreset(0)
	if err != nil {
		t.Fatalf("FetchPreset(0) failed: %v", err)
	}
	if p.Params.Width != 7 || p.Params.Height != 7 || p.Params.BlackPercent != 20 {
		t.Fatalf("unexpected first preset params: %+v", p.Params)
	}
	if _, err := FetchPreset(99); err == nil {
		t.Fatal("expected an out-of-range preset index to error")
	}
}

func TestDefaultParamsMatchesFirstPreset(t *testing.T) {
	if DefaultParams() != Presets()[0].Params {
		t.Fatal("expected DefaultParams to match the first preset")
	}
}

func TestConfigureCustomParamsRoundTrip(t *testing.T) {
	p := core.Params{Width: 10, Height: 10, BlackPercent: 25, Symmetry: constants.SymmetryMirror4, Hard: true}
	items := Configure(p)
	back, err := CustomParams(items)
	if err != nil {
		t.Fatalf("CustomParams failed: %v", err)
	}
	if back != p {
		t.Fatalf("round trip mismatch: got %+v, want %+v", back, p)
	}
}

func TestNewDescriptionAndStateRoundTrip(t *testing.T) {
	p := core.Params{Width: 7, Height: 7, BlackPercent: 20, Symmetry: constants.SymmetryRotate2}
	desc, err := NewDescription(p, rng.New("game-test"))
	if err != nil {
		t.Fatalf("NewDescription failed: %v", err)
	}
	if err := ValidateDescription(desc, p); err != nil {
		t.Fatalf("ValidateDescription failed: %v", err)
	}
	s, err := NewState(p, desc)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	if s.LightCount != 0 {
		t.Fatal("a freshly decoded state must have no lights")
	}
	if Status(s) != constants.StatusInProgress {
		t.Fatal("expected a fresh puzzle to be in-progress")
	}
}

func TestSolveThenExecuteMoveCompletesTheBoard(t *testing.T) {
	p := core.Params{Width: 7, Height: 7, BlackPercent: 20, Symmetry: constants.SymmetryRotate2}
	desc, err := NewDescription(p, rng.New("game-test-solve"))
	if err != nil {
		t.Fatalf("NewDescription failed: %v", err)
	}
	original, err := NewState(p, desc)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	current := Duplicate(original)

	move, err := Solve(original, current)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !strings.HasPrefix(move, "S") {
		t.Fatalf("expected the solve move to start with the S stamp, got %q", move)
	}

	solved, ok := ExecuteMove(current, move)
	if !ok {
		t.Fatalf("expected the solve move %q to apply", move)
	}
	if Status(solved) != constants.StatusSolved {
		t.Fatalf("expected the board to be solved after applying the solve move, got status %d", Status(solved))
	}
}

func TestTextFormatDimensions(t *testing.T) {
	p := core.Params{Width: 3, Height: 2, BlackPercent: 20, Symmetry: constants.SymmetryNone}
	s, err := NewState(p, "aaaaaa")
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	text := TextFormat(s)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2*p.Height+1 {
		t.Fatalf("expected %d rows, got %d", 2*p.Height+1, len(lines))
	}
	for _, l := range lines {
		if len(l) != 2*p.Width+1 {
			t.Fatalf("expected %d columns, got %d in line %q", 2*p.Width+1, len(l), l)
		}
	}
}
