package codec

import (
	"fmt"
	"strconv"
	"strings"

	"akari-engine/internal/akari/grid"
)

// ExecuteMove parses and applies a ';'-separated move string to a copy of
// s. On success it returns the new state and true; on any parse failure,
// out-of-range coordinate, or illegal operation it returns (nil, false)
// and s is left untouched. A move either applies in full or not at all.
func ExecuteMove(s *grid.State, move string) (*grid.State, bool) {
	next := s.Duplicate()
	for _, cmd := range strings.Split(move, ";") {
		if cmd == "" {
			continue
		}
		if !applyCommand(next, cmd) {
			return nil, false
		}
	}
	if grid.Correct(next) {
		next.Completed = true
	}
	return next, true
}

func applyCommand(s *grid.State, cmd string) bool {
	switch cmd[0] {
	case 'S':
		s.UsedSolve = true
		return true
	case 'L':
		x, y, ok := parseCoord(cmd[1:])
		if !ok || !inBounds(s, x, y) || s.IsBlack(x, y) {
			return false
		}
		s.SetImpossible(x, y, false)
		s.SetLight(x, y, !s.HasLight(x, y))
		return true
	case 'I':
		x, y, ok := parseCoord(cmd[1:])
		if !ok || !inBounds(s, x, y) || s.IsBlack(x, y) {
			return false
		}
		if s.HasLight(x, y) {
			s.SetLight(x, y, false)
		}
		s.SetImpossible(x, y, !s.IsImpossible(x, y))
		return true
	default:
		return false
	}
}

func parseCoord(s string) (x, y int, ok bool) {
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return 0, 0, false
	}
	x, errX := strconv.Atoi(s[:comma])
	y, errY := strconv.Atoi(s[comma+1:])
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}

func inBounds(s *grid.State, x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// BuildSolveMove produces the move string the game façade's Solve
// operation returns: a leading 'S' stamp, followed by one 'L' or 'I'
// command for every cell whose Light/Impossible flags differ between
// current and solved. The caller picks solved to be either a solve
// rooted at the user's current position or, failing that, a solve rooted
// at the original puzzle.
func BuildSolveMove(current, solved *grid.State) string {
	var b strings.Builder
	b.WriteByte('S')
	current.ForEachCell(func(x, y int) {
		if current.IsBlack(x, y) {
			return
		}
		wantLight := solved.HasLight(x, y)
		wantImpossible := solved.IsImpossible(x, y)
		haveLight := current.HasLight(x, y)
		haveImpossible := current.IsImpossible(x, y)
		if wantLight != haveLight {
			fmt.Fprintf(&b, ";L%d,%d", x, y)
		}
		if wantImpossible != haveImpossible && wantLight == haveLight {
			fmt.Fprintf(&b, ";I%d,%d", x, y)
		}
	})
	return b.String()
}
