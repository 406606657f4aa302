// Package generate builds puzzles of a requested difficulty with a
// guaranteed unique solution: a symmetric black-cell layout, a seed
// solution grown from a fully-lit board, clue numbering, and two clue
// pruning passes that re-validate uniqueness with the solver after each
// removal and restore on failure.
package generate

import (
	"akari-engine/internal/akari/codec"
	"akari-engine/internal/akari/grid"
	"akari-engine/internal/akari/rng"
	"akari-engine/internal/akari/solve"
	"akari-engine/internal/core"
	"akari-engine/pkg/constants"
)

// Generate produces a descriptor string for a puzzle matching p: a
// unique solution, matching the requested hard/easy class. It never
// gives up: if every attempt at the current black percentage fails it
// inflates the percentage by constants.BlackPercentStep and tries again.
func Generate(p core.Params, src *rng.Source) (string, error) {
	if err := codec.ValidateParams(p); err != nil {
		return "", err
	}

	blackPercent := p.BlackPercent
	for {
		for attempt := 0; attempt < constants.MaxGridgenTries; attempt++ {
			if desc, ok := tryGenerate(p, blackPercent, src); ok {
				return desc, nil
			}
		}
		blackPercent += constants.BlackPercentStep
		if blackPercent > constants.MaxBlackPercent {
			blackPercent = constants.MaxBlackPercent
		}
	}
}

// tryGenerate runs one full layout/seed/number/prune attempt at a fixed
// black percentage.
func tryGenerate(p core.Params, blackPercent int, src *rng.Source) (string, bool) {
	s := grid.New(p.Width, p.Height)

	placeBlackCells(s, p.Width, p.Height, p.Symmetry, blackPercent, src)

	if !buildSeedSolution(s, src) {
		return "", false
	}
	numberClues(s)
	clearAllLights(s)

	_, count, _ := runValidate(s, p.Hard)
	if count != 1 {
		return "", false
	}

	pruneUnusedClues(s, p.Hard)
	prunePairwise(s, p.Hard, src)

	_, finalCount, maxDepth := runValidate(s, p.Hard)
	if finalCount != 1 {
		return "", false
	}
	if p.Hard && maxDepth == 0 {
		return "", false
	}

	return codec.EncodeDescriptor(s), true
}

// runValidate duplicates s, runs the solver to completion on the
// duplicate, and reports the solution count and deepest branch level
// reached. s itself is never mutated by solving; only the returned
// duplicate carries the solved planes (lights, Impossible, NumberUsed).
func runValidate(s *grid.State, hard bool) (solved *grid.State, count, maxDepth int) {
	solved = s.Duplicate()
	count, maxDepth = solve.Solve(solved, hard, true)
	return
}

// pruneUnusedClues strips, in one sweep, every clue the validating solve
// did not need, then keeps the strip only if the puzzle is still
// uniquely solvable.
func pruneUnusedClues(s *grid.State, hard bool) {
	solved, count, _ := runValidate(s, hard)
	if count != 1 {
		return
	}

	stripped := s.Duplicate()
	stripped.ForEachCell(func(x, y int) {
		if stripped.IsNumbered(x, y) && !solved.NumberUsed(x, y) {
			stripped.ClearNumber(x, y)
		}
	})

	if _, strippedCount, _ := runValidate(stripped, hard); strippedCount == 1 {
		s.CopyFrom(stripped)
	}
}

// prunePairwise tries removing each remaining clue one at a time, in a
// fixed random order over every cell, restoring a clue if the puzzle no
// longer validates without it. The permutation is drawn once, before the
// loop, and never regenerated between attempts, so a fixed seed always
// prunes in the same order.
func prunePairwise(s *grid.State, hard bool, src *rng.Source) {
	order := src.ShuffleInts(s.Width * s.Height)
	for _, idx := range order {
		x, y := idx%s.Width, idx/s.Width
		if !s.IsNumbered(x, y) {
			continue
		}
		clue := s.LitCount(x, y)
		s.ClearNumber(x, y)
		if _, count, _ := runValidate(s, hard); count != 1 {
			s.SetNumber(x, y, clue)
		}
	}
}

// placeBlackCells computes the fundamental region for the requested
// symmetry, uniformly chooses a black-percent-sized subset of it, and
// reflects/rotates the choice across the whole grid.
func placeBlackCells(s *grid.State, w, h int, sym constants.Symmetry, blackPercent int, src *rng.Source) {
	reps, orbits, centre, hasCentre := computeOrbits(w, h, sym)

	if hasCentre && src.Intn(100) < blackPercent {
		s.SetBlack(centre[0], centre[1], true)
	}

	target := len(reps) * blackPercent / 100
	order := src.ShuffleInts(len(reps))
	for i := 0; i < target && i < len(order); i++ {
		rep := reps[order[i]]
		for _, c := range orbits[rep] {
			s.SetBlack(c[0], c[1], true)
		}
	}
}

// computeOrbits partitions the w x h grid into symmetry orbits under
// sym, scanned in row-major order so the first cell visited in each
// orbit is its representative. For 4-way rotational symmetry on an odd
// square, the centre cell is its own singleton orbit and is reported
// separately: it gets an independent Bernoulli trial rather than a place
// in the uniform region draw, so it is not under-represented relative to
// the four-cell orbits.
func computeOrbits(w, h int, sym constants.Symmetry) (reps [][2]int, orbits map[[2]int][][2]int, centre [2]int, hasCentre bool) {
	orbits = make(map[[2]int][][2]int)
	visited := make([]bool, w*h)
	idx := func(x, y int) int { return y*w + x }

	if sym == constants.SymmetryRotate4 && w == h && w%2 == 1 {
		centre = [2]int{w / 2, h / 2}
		hasCentre = true
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[idx(x, y)] {
				continue
			}
			if hasCentre && x == centre[0] && y == centre[1] {
				visited[idx(x, y)] = true
				continue
			}
			orbit := orbitOf(x, y, w, h, sym)
			for _, c := range orbit {
				visited[idx(c[0], c[1])] = true
			}
			rep := [2]int{x, y}
			reps = append(reps, rep)
			orbits[rep] = orbit
		}
	}
	return
}

// orbitOf returns every cell a choice at (x,y) maps to under sym.
func orbitOf(x, y, w, h int, sym constants.Symmetry) [][2]int {
	pts := map[[2]int]bool{{x, y}: true}
	switch sym {
	case constants.SymmetryNone:
	case constants.SymmetryMirror2:
		pts[[2]int{x, h - 1 - y}] = true
	case constants.SymmetryRotate2:
		pts[[2]int{w - 1 - x, h - 1 - y}] = true
	case constants.SymmetryMirror4:
		pts[[2]int{x, h - 1 - y}] = true
		pts[[2]int{w - 1 - x, y}] = true
		pts[[2]int{w - 1 - x, h - 1 - y}] = true
	case constants.SymmetryRotate4:
		pts[[2]int{w - 1 - y, x}] = true
		pts[[2]int{w - 1 - x, h - 1 - y}] = true
		pts[[2]int{y, w - 1 - x}] = true
	}
	out := make([][2]int, 0, len(pts))
	for p := range pts {
		out = append(out, p)
	}
	return out
}

// buildSeedSolution lights every white cell, then in a random
// permutation tries to remove whole groups of mutually-visible lights at
// once, stopping as soon as the board has no overlap. It reports whether
// a no-overlap seed solution was reached.
func buildSeedSolution(s *grid.State, src *rng.Source) bool {
	s.ForEachCell(func(x, y int) {
		if !s.IsBlack(x, y) {
			s.SetLight(x, y, true)
		}
	})
	s.ClearAllMarks()

	var whites [][2]int
	s.ForEachCell(func(x, y int) {
		if !s.IsBlack(x, y) {
			whites = append(whites, [2]int{x, y})
		}
	})
	order := src.ShuffleInts(len(whites))

	for _, idx := range order {
		ox, oy := whites[idx][0], whites[idx][1]
		if s.HasMark(ox, oy) || !s.HasLight(ox, oy) {
			continue
		}

		var group [][2]int
		grid.Visit(s, ox, oy, false, func(x, y int) {
			if s.HasLight(x, y) {
				group = append(group, [2]int{x, y})
			}
		})

		if len(group) > 0 && canRemoveGroup(s, group) {
			for _, m := range group {
				s.SetLight(m[0], m[1], false)
			}
		}
		s.SetMark(ox, oy, true)

		if grid.NoOverlap(s) {
			return true
		}
	}
	return grid.NoOverlap(s)
}

// canRemoveGroup reports whether every light in group can be switched
// off simultaneously without leaving any cell unlit: true unless some
// member is currently the sole illuminator (lit_count == 1) of a cell it
// sees.
func canRemoveGroup(s *grid.State, group [][2]int) bool {
	for _, m := range group {
		sole := false
		grid.Visit(s, m[0], m[1], true, func(x, y int) {
			if !sole && s.LitCount(x, y) == 1 {
				sole = true
			}
		})
		if sole {
			return false
		}
	}
	return true
}

// numberClues writes into every black cell the count of its 4-neighbours
// currently holding a light.
func numberClues(s *grid.State) {
	s.ForEachCell(func(x, y int) {
		if !s.IsBlack(x, y) {
			return
		}
		n := 0
		for _, nb := range s.Neighbours4(x, y) {
			if s.HasLight(nb[0], nb[1]) {
				n++
			}
		}
		s.SetNumber(x, y, n)
	})
}

// clearAllLights discards the seed solution's lights, leaving only the
// black layout and clues.
func clearAllLights(s *grid.State) {
	s.ForEachCell(func(x, y int) {
		if s.HasLight(x, y) {
			s.SetLight(x, y, false)
		}
	})
	s.ClearAllMarks()
}
