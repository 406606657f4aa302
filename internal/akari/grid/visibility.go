package grid

// Extents computes the four half-ray reaches from (ox,oy): walking left,
// right, up, and down until a black cell or the boundary is hit (the
// black cell itself is not included).
func Extents(s *State, ox, oy int) (minX, maxX, minY, maxY int) {
	minX = ox
	for minX-1 >= 0 && !s.IsBlack(minX-1, oy) {
		minX--
	}
	maxX = ox
	for maxX+1 < s.Width && !s.IsBlack(maxX+1, oy) {
		maxX++
	}
	minY = oy
	for minY-1 >= 0 && !s.IsBlack(ox, minY-1) {
		minY--
	}
	maxY = oy
	for maxY+1 < s.Height && !s.IsBlack(ox, maxY+1) {
		maxY++
	}
	return
}

// Visit calls fn exactly once for every cell illuminated by a light placed
// at (ox,oy): the row segment [minX..maxX] at y=oy and the column segment
// [minY..maxY] at x=ox, sharing the origin between the two so it is never
// visited twice. includeOrigin controls whether (ox,oy) itself is passed
// to fn.
func Visit(s *State, ox, oy int, includeOrigin bool, fn func(x, y int)) {
	minX, maxX, minY, maxY := Extents(s, ox, oy)

	for x := minX; x <= maxX; x++ {
		if x == ox && !includeOrigin {
			continue
		}
		fn(x, oy)
	}
	for y := minY; y <= maxY; y++ {
		if y == oy {
			continue // already visited as part of the row segment above
		}
		fn(ox, y)
	}
}

// Illuminated returns the list of cells a light at (ox,oy) would
// illuminate, per Visit's semantics. Prefer Visit directly in hot paths;
// this is a convenience for callers that want a slice.
func Illuminated(s *State, ox, oy int, includeOrigin bool) [][2]int {
	var out [][2]int
	Visit(s, ox, oy, includeOrigin, func(x, y int) {
		out = append(out, [2]int{x, y})
	})
	return out
}

// CanSee reports whether the cells (ax,ay) and (bx,by) see each other: a
// light at one would illuminate the other. The relation is symmetric by
// construction, since it is defined by walking the rays from one of the
// two points.
func CanSee(s *State, ax, ay, bx, by int) bool {
	if ax == bx && ay == by {
		return true
	}
	if ax != bx && ay != by {
		return false
	}
	minX, maxX, minY, maxY := Extents(s, ax, ay)
	if ay == by {
		return bx >= minX && bx <= maxX
	}
	return by >= minY && by <= maxY
}
