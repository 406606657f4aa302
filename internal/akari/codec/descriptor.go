// Package codec implements the three ASCII wire formats the engine reads
// and writes: puzzle parameter strings, puzzle descriptors, and move
// strings.
package codec

import (
	"fmt"
	"strings"

	"akari-engine/internal/akari/grid"
)

// EncodeDescriptor renders s as a row-major descriptor string: '0'..'4'
// for a numbered black cell, 'B' for an un-numbered black cell, and
// 'a'..'z' for a run of 1..26 consecutive white cells.
func EncodeDescriptor(s *grid.State) string {
	var b strings.Builder
	run := 0
	flush := func() {
		for run > 0 {
			n := run
			if n > 26 {
				n = 26
			}
			b.WriteByte(byte('a' + n - 1))
			run -= n
		}
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if s.IsBlack(x, y) {
				flush()
				if s.IsNumbered(x, y) {
					b.WriteByte(byte('0' + s.LitCount(x, y)))
				} else {
					b.WriteByte('B')
				}
				continue
			}
			run++
		}
	}
	flush()
	return b.String()
}

// DecodeDescriptor parses a descriptor string into a fresh width x height
// state with no lights and no Impossible marks: only the black layout and
// clues are populated. It returns an error for any violation caught by
// ValidateDescriptor.
func DecodeDescriptor(desc string, width, height int) (*grid.State, error) {
	if err := ValidateDescriptor(desc, width, height); err != nil {
		return nil, err
	}
	s := grid.New(width, height)
	x, y := 0, 0
	advance := func(n int) {
		for i := 0; i < n; i++ {
			x++
			if x == width {
				x = 0
				y++
			}
		}
	}
	for i := 0; i < len(desc); i++ {
		c := desc[i]
		switch {
		case c >= '0' && c <= '4':
			s.SetBlack(x, y, true)
			s.SetNumber(x, y, int(c-'0'))
			advance(1)
		case c == 'B':
			s.SetBlack(x, y, true)
			advance(1)
		case c >= 'a' && c <= 'z':
			advance(int(c - 'a' + 1))
		}
	}
	return s, nil
}

// ValidateDescriptor walks desc without building a state, checking
// character classes and that the decoded length is exactly width*height.
func ValidateDescriptor(desc string, width, height int) error {
	want := width * height
	if want <= 0 {
		return fmt.Errorf("codec: invalid grid dimensions %dx%d", width, height)
	}
	got := 0
	for i := 0; i < len(desc); i++ {
		c := desc[i]
		switch {
		case c >= '0' && c <= '4':
			got++
		case c == 'B':
			got++
		case c >= 'a' && c <= 'z':
			got += int(c - 'a' + 1)
		default:
			return fmt.Errorf("codec: illegal descriptor character %q at offset %d", c, i)
		}
		if got > want {
			return fmt.Errorf("codec: descriptor addresses %d cells, expected %d", got, want)
		}
	}
	if got != want {
		return fmt.Errorf("codec: descriptor covers %d cells, expected %d", got, want)
	}
	return nil
}
