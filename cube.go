package cubekit

import (
	"fmt"
	"strings"
)

// Cube represents the facelet state of a 3x3 cube.
// Each face is a 3x3 grid addressed by (row, col):
//
//	(0,0) (0,1) (0,2)
//	(1,0) (1,1) (1,2)
//	(2,0) (2,1) (2,2)
//
// Row 0 is the edge nearest the Up face for the four side faces, the
// edge nearest the Back face for Up, and the edge nearest the Front
// face for Down. The center (1,1) defines the face color and never
// moves. This orientation is what the move tables in apply.go assume.
type Cube struct {
	// Grid[face][row][col] = color
	Grid [6][3][3]Color
}

// New creates a cube with every facelet unset, ready for painting.
func New() *Cube {
	return &Cube{}
}

// NewSolved creates a cube in the canonical solved state:
// white on top, blue in front.
func NewSolved() *Cube {
	c := &Cube{}
	for _, f := range Faces {
		color := solvedColor(f)
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				c.Grid[f][r][col] = color
			}
		}
	}
	return c
}

// Set paints one facelet. Out-of-range indices and unknown faces are
// ignored so that UI-driven painting never needs bounds checks.
func (c *Cube) Set(face Face, row, col int, color Color) {
	if !face.valid() || row < 0 || row > 2 || col < 0 || col > 2 {
		return
	}
	c.Grid[face][row][col] = color
}

// Get returns the color of one facelet. Out-of-range indices and
// unknown faces return Unset rather than failing.
func (c *Cube) Get(face Face, row, col int) Color {
	if !face.valid() || row < 0 || row > 2 || col < 0 || col > 2 {
		return Unset
	}
	return c.Grid[face][row][col]
}

// Reset clears every facelet back to Unset.
func (c *Cube) Reset() {
	c.Grid = [6][3][3]Color{}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.Grid = c.Grid
	return clone
}

// Validate checks whether the configuration is ready to hand to a
// solver: all 54 facelets painted, each color used exactly 9 times,
// exactly 6 distinct colors. It reports the first violated condition
// in the diagnostic. Passing these checks does not guarantee the
// configuration is physically reachable; the solver reports that.
func (c *Cube) Validate() (bool, string) {
	var counts [7]int
	painted := 0
	for _, f := range Faces {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				color := c.Grid[f][r][col]
				if color.IsReal() {
					counts[color]++
					painted++
				}
			}
		}
	}

	if painted != 54 {
		return false, fmt.Sprintf("cube must have all 54 facelets colored, currently has %d", painted)
	}

	distinct := 0
	for _, color := range Colors {
		n := counts[color]
		if n == 0 {
			continue
		}
		distinct++
		if n != 9 {
			return false, fmt.Sprintf("color %s appears %d times, should be 9", color.Name(), n)
		}
	}

	if distinct != 6 {
		return false, fmt.Sprintf("cube must have exactly 6 colors, found %d", distinct)
	}

	return true, "valid cube configuration"
}

// IsSolved reports whether every face is uniform in a real color and
// the six face colors are pairwise distinct.
func (c *Cube) IsSolved() bool {
	var seen [7]bool
	for _, f := range Faces {
		center := c.Grid[f][1][1]
		if !center.IsReal() || seen[center] {
			return false
		}
		seen[center] = true
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if c.Grid[f][r][col] != center {
					return false
				}
			}
		}
	}
	return true
}

// String returns a text rendering of the cube as an unfolded net:
//
//	    [U]
//	[L] [F] [R] [B]
//	    [D]
func (c *Cube) String() string {
	var b strings.Builder

	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		c.writeRow(&b, Up, r)
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		for _, f := range []Face{Left, Front, Right, Back} {
			c.writeRow(&b, f, r)
		}
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		c.writeRow(&b, Down, r)
		b.WriteByte('\n')
	}

	return b.String()
}

func (c *Cube) writeRow(b *strings.Builder, f Face, r int) {
	for col := 0; col < 3; col++ {
		b.WriteString(c.Grid[f][r][col].String())
		b.WriteByte(' ')
	}
}
