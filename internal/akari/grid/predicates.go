package grid

// AllLit reports whether every white cell has at least one light seeing
// it.
func AllLit(s *State) bool {
	all := true
	s.ForEachCell(func(x, y int) {
		if !all {
			return
		}
		if !s.IsBlack(x, y) && s.LitCount(x, y) < 1 {
			all = false
		}
	})
	return all
}

// NoOverlap reports whether no cell holding a light is illuminated by more
// than itself, i.e. no two placed lights see each other.
func NoOverlap(s *State) bool {
	ok := true
	s.ForEachCell(func(x, y int) {
		if !ok {
			return
		}
		if !s.IsBlack(x, y) && s.HasLight(x, y) && s.LitCount(x, y) > 1 {
			ok = false
		}
	})
	return ok
}

// NumbersOK reports whether every numbered black cell has exactly its
// clue count of lights in its 4-neighbourhood.
func NumbersOK(s *State) bool {
	ok := true
	s.ForEachCell(func(x, y int) {
		if !ok || !s.IsNumbered(x, y) {
			return
		}
		want := s.LitCount(x, y)
		got := 0
		for _, n := range s.Neighbours4(x, y) {
			if s.HasLight(n[0], n[1]) {
				got++
			}
		}
		if got != want {
			ok = false
		}
	})
	return ok
}

// Correct reports whether the board is a complete, valid solution: every
// white cell lit, no overlapping lights, and every clue satisfied.
func Correct(s *State) bool {
	return AllLit(s) && NoOverlap(s) && NumbersOK(s)
}

// NumberWrong is a display hint: true if the clue at a numbered black
// cell is already over-satisfied by placed neighbouring lights, or can no
// longer be satisfied even if every remaining candidate neighbour were
// turned on.
func NumberWrong(s *State, x, y int) bool {
	if !s.IsNumbered(x, y) {
		return false
	}
	want := s.LitCount(x, y)
	placed := 0
	candidates := 0
	for _, n := range s.Neighbours4(x, y) {
		nx, ny := n[0], n[1]
		if s.HasLight(nx, ny) {
			placed++
			continue
		}
		if s.IsBlack(nx, ny) || s.IsImpossible(nx, ny) || s.IsLit(nx, ny) {
			continue
		}
		candidates++
	}
	if placed > want {
		return true
	}
	return placed+candidates < want
}
