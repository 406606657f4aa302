// Package puzzles manages a batch of pre-generated Akari puzzles: a
// descriptor plus the parameter string it was generated from, loaded
// once from a JSON file and served by index, by seed, or by calendar
// date.
package puzzles

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"
	"time"

	"akari-engine/internal/akari/codec"
	"akari-engine/internal/core"
)

// Entry is one pre-generated puzzle: the parameter string it was built
// from (full encoding, so width/height/black-percent/symmetry/hard are
// all recoverable) and its descriptor.
type Entry struct {
	Params     string `json:"params"`
	Descriptor string `json:"descriptor"`
}

// PuzzleFile is the top-level structure for the JSON file cmd/generate
// writes and the server loads at startup.
type PuzzleFile struct {
	Version int     `json:"version"`
	Count   int     `json:"count"`
	Puzzles []Entry `json:"puzzles"`
}

// Loader manages pre-generated puzzles
type Loader struct {
	puzzles []Entry
	mu      sync.RWMutex
}

var (
	globalLoader *Loader
	loadOnce     sync.Once
	loadErr      error
)

// Load reads puzzles from the JSON file
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	var file PuzzleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle file: %w", err)
	}

	return &Loader{puzzles: file.Puzzles}, nil
}

// LoadGlobal loads puzzles into the global loader (singleton)
func LoadGlobal(path string) error {
	loadOnce.Do(func() {
		globalLoader, loadErr = Load(path)
	})
	return loadErr
}

// Global returns the global loader instance
func Global() *Loader {
	return globalLoader
}

// SetGlobal sets the global loader instance (for testing)
func SetGlobal(l *Loader) {
	globalLoader = l
}

// NewLoaderFromPuzzles creates a loader from puzzle data (for testing)
func NewLoaderFromPuzzles(puzzles []Entry) *Loader {
	return &Loader{puzzles: puzzles}
}

// Count returns the number of puzzles
func (l *Loader) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.puzzles)
}

// GetPuzzle returns the decoded parameters and descriptor at index.
func (l *Loader) GetPuzzle(index int) (core.Params, string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.puzzles) {
		return core.Params{}, "", fmt.Errorf("puzzle index %d out of range (0-%d)", index, len(l.puzzles)-1)
	}

	entry := l.puzzles[index]
	p, err := codec.DecodeParams(entry.Params)
	if err != nil {
		return core.Params{}, "", fmt.Errorf("stored params %q invalid: %w", entry.Params, err)
	}
	return p, entry.Descriptor, nil
}

// GetPuzzleBySeed deterministically maps seed to a puzzle index via an
// FNV hash.
func (l *Loader) GetPuzzleBySeed(seed string) (params core.Params, descriptor string, puzzleIndex int, err error) {
	l.mu.RLock()
	count := len(l.puzzles)
	l.mu.RUnlock()

	if count == 0 {
		return core.Params{}, "", 0, fmt.Errorf("no puzzles loaded")
	}

	h := fnv.New64a()
	h.Write([]byte(seed))
	puzzleIndex = int(h.Sum64() % uint64(count)) //nolint:gosec // count is bounded by slice length

	params, descriptor, err = l.GetPuzzle(puzzleIndex)
	return
}

// GetDailyPuzzle returns the puzzle for a given UTC date.
func (l *Loader) GetDailyPuzzle(date time.Time) (params core.Params, descriptor string, puzzleIndex int, err error) {
	dateStr := date.UTC().Format("2006-01-02")
	seed := "daily:" + dateStr
	return l.GetPuzzleBySeed(seed)
}

// GetTodayPuzzle returns the puzzle for today (UTC).
func (l *Loader) GetTodayPuzzle() (params core.Params, descriptor string, puzzleIndex int, err error) {
	return l.GetDailyPuzzle(time.Now())
}
