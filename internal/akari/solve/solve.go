// Package solve implements the deductive solver: two propagation rules
// run to a fixed point, plus bounded recursive backtracking that counts
// completions, enough to distinguish zero, one, and more than one
// solution for uniqueness testing.
package solve

import (
	"akari-engine/internal/akari/grid"
	"akari-engine/pkg/constants"
)

// Unknown is the sentinel returned when the solver gives up within its
// recursion budget. It is constants.SolveUnknown, re-exported under a
// solver-local name for readability at call sites.
const Unknown = constants.SolveUnknown

// Solve is the top-level entry point: it clears NumberUsed scratch state
// and delegates to the bounded recursive search. It returns the number of
// completions found (capped in practice once uniqueness is decided), and
// the deepest branching level actually reached (0 means the puzzle solved
// by propagation alone).
func Solve(s *grid.State, allowGuessing, requireUnique bool) (count, outMaxDepth int) {
	s.ClearAllNumberUsed()
	maxDepth := 0
	if allowGuessing {
		maxDepth = constants.DefaultMaxDepth
	}
	depth := 0
	count = solveSub(s, requireUnique, maxDepth, depth, &outMaxDepth)
	return count, outMaxDepth
}

// solveSub runs propagation to a fixed point, then either reports a
// result or branches. Return values: > 0 is a solution count and the
// state planes hold a solved configuration, 0 means unsatisfiable, and
// Unknown means the recursion budget ran out before an answer.
func solveSub(s *grid.State, unique bool, maxDepth, depth int, outMaxDepth *int) int {
	for {
		if !grid.NoOverlap(s) {
			return 0
		}
		if grid.Correct(s) {
			return 1
		}
		if !applyPass(s) {
			break
		}
	}

	// Rules are exhausted and the board is not yet solved: branch.
	branchLevel := depth + 1
	if branchLevel > *outMaxDepth {
		*outMaxDepth = branchLevel
	}
	if depth >= maxDepth {
		return Unknown
	}

	bx, by, ok := pickBranchCell(s)
	if !ok {
		// No legal placement remains anywhere: unsatisfiable from here.
		// The overlap check above does not detect this case (an unlit
		// cell or an unmet clue with no candidate left), so it is
		// reported here.
		return 0
	}

	// Branch B explores placing a light, on a snapshot taken before
	// Branch A mutates the live state.
	preBranch := s.Duplicate()

	// Branch A: forbid a light here, explored on the live state.
	s.SetImpossible(bx, by, true)
	selfResult := solveSub(s, unique, maxDepth, branchLevel, outMaxDepth)

	if !unique && selfResult > 0 {
		return selfResult
	}

	// Branch B: place a light here, explored on the snapshot.
	preBranch.SetLight(bx, by, true)
	copyResult := solveSub(preBranch, unique, maxDepth, branchLevel, outMaxDepth)

	if unique && (selfResult == Unknown || copyResult == Unknown) {
		return Unknown
	}
	if selfResult <= 0 && copyResult <= 0 {
		return selfResult
	}
	if selfResult <= 0 && copyResult > 0 {
		s.CopyFrom(preBranch)
		return copyResult
	}
	if selfResult > 0 && copyResult <= 0 {
		return selfResult
	}
	return selfResult + copyResult
}

// applyPass runs both propagation rules once over the whole board and
// reports whether anything changed.
func applyPass(s *grid.State) bool {
	changed := false
	if applyUnlitCellRule(s) {
		changed = true
	}
	if applyNumberRule(s) {
		changed = true
	}
	return changed
}

// applyUnlitCellRule places a light wherever an unlit white cell has
// exactly one remaining candidate illuminator.
func applyUnlitCellRule(s *grid.State) bool {
	changed := false
	s.ForEachCell(func(cx, cy int) {
		if s.IsBlack(cx, cy) || s.IsLit(cx, cy) {
			return
		}
		var onlyX, onlyY, n int
		for _, cand := range lightCandidates(s, cx, cy) {
			n++
			onlyX, onlyY = cand[0], cand[1]
		}
		if n == 1 {
			s.SetLight(onlyX, onlyY, true)
			changed = true
		}
	})
	return changed
}

// lightCandidates returns the cells visible from (cx,cy) that could still
// host a light illuminating it: visible, not black, not already lit
// elsewhere, and not marked Impossible.
func lightCandidates(s *grid.State, cx, cy int) [][2]int {
	var out [][2]int
	grid.Visit(s, cx, cy, true, func(x, y int) {
		if s.IsBlack(x, y) || s.IsImpossible(x, y) || s.IsLit(x, y) {
			return
		}
		out = append(out, [2]int{x, y})
	})
	return out
}

// applyNumberRule deduces from each numbered clue's 4-neighbourhood: a
// satisfied clue forbids its remaining candidates, and a clue whose
// candidates only just cover the deficit forces lights onto all of them.
func applyNumberRule(s *grid.State) bool {
	changed := false
	s.ForEachCell(func(cx, cy int) {
		if !s.IsNumbered(cx, cy) {
			return
		}
		n := s.LitCount(cx, cy)
		neighbours := s.Neighbours4(cx, cy)

		placed := 0
		var possible [][2]int
		for _, nb := range neighbours {
			nx, ny := nb[0], nb[1]
			if s.HasLight(nx, ny) {
				placed++
				continue
			}
			if s.IsBlack(nx, ny) || s.IsImpossible(nx, ny) || s.IsLit(nx, ny) {
				continue
			}
			possible = append(possible, nb)
		}

		if placed == n {
			fired := false
			for _, nb := range possible {
				s.SetImpossible(nb[0], nb[1], true)
				fired = true
			}
			if fired {
				changed = true
				s.SetNumberUsed(cx, cy, true)
			}
		} else if placed+len(possible) == n && len(possible) > 0 {
			for _, nb := range possible {
				s.SetLight(nb[0], nb[1], true)
			}
			changed = true
			s.SetNumberUsed(cx, cy, true)
		}
	})
	return changed
}

// pickBranchCell chooses the next cell to branch on: among all white
// cells where a light could still legally be placed, the one that would
// illuminate the most currently-unlit cells (origin included), breaking
// ties by row-major order.
func pickBranchCell(s *grid.State) (x, y int, ok bool) {
	best := -1
	s.ForEachCell(func(cx, cy int) {
		if s.IsBlack(cx, cy) || s.HasLight(cx, cy) || s.IsImpossible(cx, cy) || s.IsLit(cx, cy) {
			return
		}
		score := 0
		grid.Visit(s, cx, cy, true, func(vx, vy int) {
			if !s.IsLit(vx, vy) {
				score++
			}
		})
		if score > best {
			best = score
			x, y, ok = cx, cy, true
		}
	})
	return x, y, ok
}
