// Package game is the stable façade over the lower akari/* packages: the
// small set of pure, caller-managed-state operations an external UI
// layer (here, internal/transport/http and the cmd/ entry points) needs.
package game

import (
	"fmt"
	"strconv"
	"strings"

	"akari-engine/internal/akari/codec"
	"akari-engine/internal/akari/generate"
	"akari-engine/internal/akari/grid"
	"akari-engine/internal/akari/rng"
	"akari-engine/internal/akari/solve"
	"akari-engine/internal/core"
	"akari-engine/pkg/constants"
)

// Presets returns the default menu: 7x7, 10x10 and 14x14 grids, each at
// 20% black, in easy/hard pairs.
func Presets() []core.Preset {
	dims := []int{7, 10, 14}
	var out []core.Preset
	for _, d := range dims {
		out = append(out,
			core.Preset{
				Label: fmt.Sprintf("%dx%d Easy", d, d),
				Params: core.Params{
					Width: d, Height: d, BlackPercent: 20,
					Symmetry: constants.SymmetryRotate2, Hard: false,
				},
			},
			core.Preset{
				Label: fmt.Sprintf("%dx%d Hard", d, d),
				Params: core.Params{
					Width: d, Height: d, BlackPercent: 20,
					Symmetry: constants.SymmetryRotate2, Hard: true,
				},
			},
		)
	}
	return out
}

// FetchPreset returns the i'th preset's label and parameters.
func FetchPreset(i int) (core.Preset, error) {
	presets := Presets()
	if i < 0 || i >= len(presets) {
		return core.Preset{}, fmt.Errorf("game: preset index %d out of range [0,%d)", i, len(presets))
	}
	return presets[i], nil
}

// DefaultParams returns the parameters of the first preset.
func DefaultParams() core.Params {
	return Presets()[0].Params
}

// EncodeParams, DecodeParams and ValidateParams delegate directly to the
// codec package; the façade re-exports them so callers need only import
// this one package.
func EncodeParams(p core.Params, full bool) string   { return codec.EncodeParams(p, full) }
func DecodeParams(s string) (core.Params, error)     { return codec.DecodeParams(s) }
func ValidateParams(p core.Params) error             { return codec.ValidateParams(p) }

// Configure renders p as the five-item configure dialog schema: width,
// height, black percentage, symmetry, difficulty.
func Configure(p core.Params) []core.ConfigItem {
	difficultyIndex := 0
	if p.Hard {
		difficultyIndex = 1
	}
	return []core.ConfigItem{
		{Name: "Width", Kind: core.ConfigString, Value: strconv.Itoa(p.Width)},
		{Name: "Height", Kind: core.ConfigString, Value: strconv.Itoa(p.Height)},
		{Name: "% black", Kind: core.ConfigString, Value: strconv.Itoa(p.BlackPercent)},
		{Name: "Symmetry", Kind: core.ConfigChoices, Choices: core.SymmetryChoices, Index: int(p.Symmetry)},
		{Name: "Difficulty", Kind: core.ConfigChoices, Choices: core.DifficultyChoices, Index: difficultyIndex},
	}
}

// CustomParams is the inverse of Configure: it reads the five-item
// schema back into validated Params.
func CustomParams(items []core.ConfigItem) (core.Params, error) {
	if len(items) != 5 {
		return core.Params{}, fmt.Errorf("game: expected 5 configure items, got %d", len(items))
	}
	w, err := strconv.Atoi(items[0].Value)
	if err != nil {
		return core.Params{}, fmt.Errorf("game: bad width: %w", err)
	}
	h, err := strconv.Atoi(items[1].Value)
	if err != nil {
		return core.Params{}, fmt.Errorf("game: bad height: %w", err)
	}
	b, err := strconv.Atoi(items[2].Value)
	if err != nil {
		return core.Params{}, fmt.Errorf("game: bad black percent: %w", err)
	}
	p := core.Params{
		Width:        w,
		Height:       h,
		BlackPercent: b,
		Symmetry:     constants.Symmetry(items[3].Index),
		Hard:         items[4].Index == 1,
	}
	if err := codec.ValidateParams(p); err != nil {
		return core.Params{}, err
	}
	return p, nil
}

// NewDescription generates a fresh puzzle descriptor for p using src.
func NewDescription(p core.Params, src *rng.Source) (string, error) {
	return generate.Generate(p, src)
}

// ValidateDescription checks desc against p's dimensions.
func ValidateDescription(desc string, p core.Params) error {
	return codec.ValidateDescriptor(desc, p.Width, p.Height)
}

// NewState decodes desc into a fresh state with no lights and no
// Impossible marks.
func NewState(p core.Params, desc string) (*grid.State, error) {
	return codec.DecodeDescriptor(desc, p.Width, p.Height)
}

// Duplicate returns an independent deep copy of s.
func Duplicate(s *grid.State) *grid.State {
	return s.Duplicate()
}

// Solve is the "give me the answer" operation: it prefers solving onward
// from current, falling back to original if that position turns out to
// be a dead end, and returns the move string that carries current to the
// solved configuration.
func Solve(original, current *grid.State) (string, error) {
	dup := current.Duplicate()
	if count, _ := solve.Solve(dup, true, false); count > 0 {
		return codec.BuildSolveMove(current, dup), nil
	}
	dup = original.Duplicate()
	if count, _ := solve.Solve(dup, true, false); count > 0 {
		return codec.BuildSolveMove(current, dup), nil
	}
	return "", fmt.Errorf("game: no solution reachable from the current or original position")
}

// TextFormat renders s as a bordered (2h+1) x (2w+1) character grid,
// used by tests and CLI tools.
func TextFormat(s *grid.State) string {
	rows := 2*s.Height + 1
	cols := 2*s.Width + 1
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			switch {
			case r%2 == 0 && c%2 == 0:
				b.WriteByte('+')
			case r%2 == 0:
				b.WriteByte('-')
			case c%2 == 0:
				b.WriteByte('|')
			default:
				b.WriteRune(cellRune(s, (c-1)/2, (r-1)/2))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellRune(s *grid.State, x, y int) rune {
	switch {
	case s.IsNumbered(x, y):
		return rune('0' + s.LitCount(x, y))
	case s.IsBlack(x, y):
		return '#'
	case s.HasLight(x, y):
		return 'L'
	case s.IsImpossible(x, y):
		return 'x'
	case s.IsLit(x, y):
		return '.'
	default:
		return ' '
	}
}

// ExecuteMove delegates to the codec executor.
func ExecuteMove(s *grid.State, move string) (*grid.State, bool) {
	return codec.ExecuteMove(s, move)
}

// Status classifies s: solved once Correct, unsolvable once two lights
// see each other or some clue can no longer be satisfied, else
// in-progress.
func Status(s *grid.State) constants.Status {
	if grid.Correct(s) {
		return constants.StatusSolved
	}
	if !grid.NoOverlap(s) {
		return constants.StatusUnsolvable
	}
	unsolvable := false
	s.ForEachCell(func(x, y int) {
		if unsolvable || !s.IsNumbered(x, y) {
			return
		}
		if grid.NumberWrong(s, x, y) {
			unsolvable = true
		}
	})
	if unsolvable {
		return constants.StatusUnsolvable
	}
	return constants.StatusInProgress
}
