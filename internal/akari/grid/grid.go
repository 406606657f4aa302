// Package grid implements the Akari puzzle state model: the flag plane,
// the incrementally-maintained illumination counts, and the single
// mutator (SetLight) permitted to flip a light.
package grid

import "fmt"

// Flag is a bit in a cell's flag word.
type Flag uint8

const (
	Black Flag = 1 << iota
	Numbered
	NumberUsed
	Light
	Impossible
	Mark
)

// State is the full mutable puzzle board. All mutation that touches Light
// must go through SetLight so LitCount stays consistent.
type State struct {
	Width, Height int

	flags []Flag
	// litCount holds, for white cells, the number of lights that currently
	// see the cell. For numbered black cells the same slot holds the clue
	// number. Unused for un-numbered black cells.
	litCount []int

	LightCount int
	Completed  bool
	UsedSolve  bool
}

// New allocates an empty width x height board: all cells white, unlit, no
// lights.
func New(width, height int) *State {
	if width < 1 || height < 1 {
		panic("grid: non-positive dimension")
	}
	n := width * height
	return &State{
		Width:    width,
		Height:   height,
		flags:    make([]Flag, n),
		litCount: make([]int, n),
	}
}

func (s *State) inBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

func (s *State) index(x, y int) int {
	if !s.inBounds(x, y) {
		panic(fmt.Sprintf("grid: (%d,%d) out of bounds for %dx%d", x, y, s.Width, s.Height))
	}
	return y*s.Width + x
}

// Flags returns the raw flag word at (x,y).
func (s *State) Flags(x, y int) Flag {
	return s.flags[s.index(x, y)]
}

func (s *State) has(x, y int, f Flag) bool {
	return s.flags[s.index(x, y)]&f != 0
}

func (s *State) IsBlack(x, y int) bool      { return s.has(x, y, Black) }
func (s *State) IsNumbered(x, y int) bool   { return s.has(x, y, Numbered) }
func (s *State) HasLight(x, y int) bool     { return s.has(x, y, Light) }
func (s *State) IsImpossible(x, y int) bool { return s.has(x, y, Impossible) }
func (s *State) HasMark(x, y int) bool      { return s.has(x, y, Mark) }
func (s *State) NumberUsed(x, y int) bool   { return s.has(x, y, NumberUsed) }

// LitCount returns the illumination count of a white cell, or the clue
// value of a numbered black cell.
func (s *State) LitCount(x, y int) int {
	return s.litCount[s.index(x, y)]
}

// IsLit reports whether a white cell currently has at least one light
// seeing it.
func (s *State) IsLit(x, y int) bool {
	return s.LitCount(x, y) >= 1
}

// SetBlack marks (x,y) as a black wall cell. Only valid before any lights
// have been placed on the board: it does not maintain the illumination
// counts of cells whose visibility it changes. Callers build the black
// layout first, then place lights.
func (s *State) SetBlack(x, y int, black bool) {
	idx := s.index(x, y)
	if black {
		s.flags[idx] |= Black
		s.litCount[idx] = 0
	} else {
		s.flags[idx] &^= Black | Numbered
		s.litCount[idx] = 0
	}
}

// SetNumber marks (x,y) as a numbered black clue with the given value.
// Preconditions: the cell is black.
func (s *State) SetNumber(x, y, n int) {
	idx := s.index(x, y)
	if s.flags[idx]&Black == 0 {
		panic("grid: SetNumber on a non-black cell")
	}
	s.flags[idx] |= Numbered
	s.litCount[idx] = n
}

// ClearNumber removes the clue from a numbered black cell, leaving it an
// un-numbered black wall.
func (s *State) ClearNumber(x, y int) {
	idx := s.index(x, y)
	s.flags[idx] &^= Numbered
	s.litCount[idx] = 0
}

// SetMark sets or clears the generator's scratch Mark bit.
func (s *State) SetMark(x, y int, on bool) {
	idx := s.index(x, y)
	if on {
		s.flags[idx] |= Mark
	} else {
		s.flags[idx] &^= Mark
	}
}

// ClearAllMarks clears the Mark bit across the whole board.
func (s *State) ClearAllMarks() {
	for i := range s.flags {
		s.flags[i] &^= Mark
	}
}

// ClearAllNumberUsed clears the NumberUsed scratch bit across the board,
// as the top-level solver entry point does before each solve attempt.
func (s *State) ClearAllNumberUsed() {
	for i := range s.flags {
		s.flags[i] &^= NumberUsed
	}
}

// SetNumberUsed marks a numbered clue as having contributed to a
// deduction during the current solve pass.
func (s *State) SetNumberUsed(x, y int, on bool) {
	idx := s.index(x, y)
	if on {
		s.flags[idx] |= NumberUsed
	} else {
		s.flags[idx] &^= NumberUsed
	}
}

// SetImpossible sets or clears the Impossible flag directly, without
// touching Light. Callers that need to flip a light must use SetLight
// instead; this is for the codec's I-command and the solver's
// deductions, both of which never touch a cell already holding a light.
func (s *State) SetImpossible(x, y int, on bool) {
	idx := s.index(x, y)
	if on {
		s.flags[idx] |= Impossible
	} else {
		s.flags[idx] &^= Impossible
	}
}

// SetLight is the sole mutator permitted to flip the Light flag. It keeps
// LitCount consistent by walking the horizontal/vertical visibility rays
// from (x,y) and adding or removing one illumination count on every cell
// those rays cover, including (x,y) itself.
func (s *State) SetLight(x, y int, on bool) {
	idx := s.index(x, y)
	if s.flags[idx]&Black != 0 {
		panic("grid: SetLight on a black cell")
	}
	wasOn := s.flags[idx]&Light != 0
	if wasOn == on {
		return
	}

	delta := 1
	if !on {
		delta = -1
	}

	if on {
		s.flags[idx] |= Light
		s.LightCount++
	} else {
		s.flags[idx] &^= Light
		s.LightCount--
	}

	Visit(s, x, y, true, func(cx, cy int) {
		ci := s.index(cx, cy)
		s.litCount[ci] += delta
	})
}

// Duplicate returns a deep copy of s; no state is shared between the two.
func (s *State) Duplicate() *State {
	n := &State{
		Width:      s.Width,
		Height:     s.Height,
		flags:      make([]Flag, len(s.flags)),
		litCount:   make([]int, len(s.litCount)),
		LightCount: s.LightCount,
		Completed:  s.Completed,
		UsedSolve:  s.UsedSolve,
	}
	copy(n.flags, s.flags)
	copy(n.litCount, s.litCount)
	return n
}

// CopyFrom overwrites s's planes with a's, used when a solver branch's
// solved configuration must be adopted as the authoritative state.
func (s *State) CopyFrom(a *State) {
	if s.Width != a.Width || s.Height != a.Height {
		panic("grid: CopyFrom dimension mismatch")
	}
	copy(s.flags, a.flags)
	copy(s.litCount, a.litCount)
	s.LightCount = a.LightCount
	s.Completed = a.Completed
	s.UsedSolve = a.UsedSolve
}

// ForEachCell calls fn for every cell in row-major order.
func (s *State) ForEachCell(fn func(x, y int)) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			fn(x, y)
		}
	}
}

// Neighbours4 returns the up-to-4 edge-clipped cardinal neighbours of
// (x,y), in N,E,S,W order (whichever exist).
func (s *State) Neighbours4(x, y int) [][2]int {
	candidates := [][2]int{{x, y - 1}, {x + 1, y}, {x, y + 1}, {x - 1, y}}
	out := make([][2]int, 0, 4)
	for _, c := range candidates {
		if s.inBounds(c[0], c[1]) {
			out = append(out, c)
		}
	}
	return out
}
