package cubekit

import "fmt"

// Solver notation: 54 characters over the alphabet {U,R,F,D,L,B}, faces
// in the order Up, Right, Front, Down, Left, Back, each face row-major.
// Each letter names the solved face a color belongs on, so the mapping
// between colors and letters is the fixed bijection white→U, red→R,
// blue→F, yellow→D, orange→L, green→B.

// SolvedNotation is the notation string of the canonical solved state.
const SolvedNotation = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// colorLetter returns the notation letter for a color, or false for the
// sentinel and anything else outside the palette.
func colorLetter(c Color) (byte, bool) {
	switch c {
	case White:
		return 'U', true
	case Red:
		return 'R', true
	case Blue:
		return 'F', true
	case Yellow:
		return 'D', true
	case Orange:
		return 'L', true
	case Green:
		return 'B', true
	default:
		return 0, false
	}
}

// letterColor is the inverse of colorLetter.
func letterColor(ch byte) (Color, bool) {
	switch ch {
	case 'U':
		return White, true
	case 'R':
		return Red, true
	case 'F':
		return Blue, true
	case 'D':
		return Yellow, true
	case 'L':
		return Orange, true
	case 'B':
		return Green, true
	default:
		return Unset, false
	}
}

// Notation encodes the cube as a 54-character solver string. Every
// facelet must hold a real color; encountering the Unset sentinel (or
// any unmapped value) is a caller error and fails with ErrUnmappedColor.
func (c *Cube) Notation() (string, error) {
	buf := make([]byte, 0, 54)
	for _, f := range Faces {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				ch, ok := colorLetter(c.Grid[f][r][col])
				if !ok {
					return "", fmt.Errorf("%w: %s at %s(%d,%d)",
						ErrUnmappedColor, c.Grid[f][r][col].Name(), f, r, col)
				}
				buf = append(buf, ch)
			}
		}
	}
	return string(buf), nil
}

// FromNotation builds a cube from a 54-character solver string.
func FromNotation(s string) (*Cube, error) {
	c := New()
	if err := c.DecodeNotation(s); err != nil {
		return nil, err
	}
	return c, nil
}

// DecodeNotation replaces the cube's state with the configuration in a
// 54-character solver string. On any format error the cube is left
// untouched.
func (c *Cube) DecodeNotation(s string) error {
	if len(s) != 54 {
		return fmt.Errorf("%w: length %d, want 54", ErrBadCubeString, len(s))
	}

	var grid [6][3][3]Color
	for i := 0; i < 54; i++ {
		color, ok := letterColor(s[i])
		if !ok {
			return fmt.Errorf("%w: character %q at position %d", ErrBadCubeString, s[i], i)
		}
		grid[i/9][(i%9)/3][i%3] = color
	}

	c.Grid = grid
	return nil
}
