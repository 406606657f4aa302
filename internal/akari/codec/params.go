package codec

import (
	"fmt"
	"strconv"
	"strings"

	"akari-engine/internal/core"
	"akari-engine/pkg/constants"
)

// EncodeParams renders p as W 'x' H ('b' BLACK)? ('s' SYMM)? ('r')?.
// When full is false only "WxH" is emitted, so strings destined for URLs
// and cookies leak no generation hints.
func EncodeParams(p core.Params, full bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d", p.Width, p.Height)
	if !full {
		return b.String()
	}
	fmt.Fprintf(&b, "b%d", p.BlackPercent)
	fmt.Fprintf(&b, "s%d", int(p.Symmetry))
	if p.Hard {
		b.WriteByte('r')
	}
	return b.String()
}

// DecodeParams parses a params string produced by EncodeParams (full or
// non-full). Missing optional fields fall back to the package defaults
// used by DefaultParams in the game façade.
func DecodeParams(s string) (core.Params, error) {
	p := core.Params{
		BlackPercent: 20,
		Symmetry:     constants.SymmetryRotate2,
	}

	xi := strings.IndexByte(s, 'x')
	if xi < 0 {
		return p, fmt.Errorf("codec: params %q missing 'x' separator", s)
	}
	w, err := strconv.Atoi(s[:xi])
	if err != nil {
		return p, fmt.Errorf("codec: bad width in params %q: %w", s, err)
	}
	p.Width = w

	rest := s[xi+1:]
	hEnd := len(rest)
	for i, c := range rest {
		if c == 'b' || c == 's' || c == 'r' {
			hEnd = i
			break
		}
	}
	h, err := strconv.Atoi(rest[:hEnd])
	if err != nil {
		return p, fmt.Errorf("codec: bad height in params %q: %w", s, err)
	}
	p.Height = h
	rest = rest[hEnd:]

	for len(rest) > 0 {
		switch rest[0] {
		case 'b':
			rest = rest[1:]
			n, tail := leadingInt(rest)
			if n == nil {
				return p, fmt.Errorf("codec: bad black percent in params %q", s)
			}
			p.BlackPercent = *n
			rest = tail
		case 's':
			rest = rest[1:]
			n, tail := leadingInt(rest)
			if n == nil {
				return p, fmt.Errorf("codec: bad symmetry in params %q", s)
			}
			p.Symmetry = constants.Symmetry(*n)
			rest = tail
		case 'r':
			p.Hard = true
			rest = rest[1:]
		default:
			return p, fmt.Errorf("codec: unexpected character %q in params %q", rest[0], s)
		}
	}
	return p, nil
}

func leadingInt(s string) (*int, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return nil, s
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return nil, s
	}
	return &n, s[i:]
}

// ValidateParams reports whether p is a legal, constructible set of puzzle
// parameters.
func ValidateParams(p core.Params) error {
	if p.Width < constants.MinGridDim || p.Height < constants.MinGridDim {
		return fmt.Errorf("codec: dimensions must be at least %dx%d, got %dx%d",
			constants.MinGridDim, constants.MinGridDim, p.Width, p.Height)
	}
	if p.BlackPercent < constants.MinBlackPercent || p.BlackPercent > constants.MaxBlackPercent {
		return fmt.Errorf("codec: black percent %d out of range [%d,%d]",
			p.BlackPercent, constants.MinBlackPercent, constants.MaxBlackPercent)
	}
	if p.Symmetry == constants.SymmetryRotate4 && p.Width != p.Height {
		return fmt.Errorf("codec: 4-way rotational symmetry requires a square grid, got %dx%d", p.Width, p.Height)
	}
	if p.Symmetry < constants.SymmetryNone || p.Symmetry > constants.SymmetryRotate4 {
		return fmt.Errorf("codec: unknown symmetry %d", int(p.Symmetry))
	}
	return nil
}
