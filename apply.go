package cubekit

// Move application. Every face turn decomposes into two permutations
// applied together: the turning face's own 3x3 grid rotates in place,
// and one 3-facelet strip on each of the four bordering faces cycles
// around the turning face.
//
// The border cycles are fixed data, not behavior: borderCycles below
// tabulates, for each face, the four strips in clockwise flow order.
// A clockwise turn sends the contents of strip 0 to strip 1, 1 to 2,
// 2 to 3, and 3 back to 0. A counter-clockwise turn runs the same
// cycle backwards; a half turn runs it twice. Cell i of each strip
// lines up with cell i of the next, so reversals around the Back and
// Left seams are encoded in the cell order itself.

// cell addresses one facelet.
type cell struct {
	row, col int
}

// strip is one 3-facelet border segment on a single face.
type strip struct {
	face  Face
	cells [3]cell
}

// borderCycles maps each turning face to its border 4-cycle.
// Strip order is clockwise flow as seen looking at the turning face.
var borderCycles = [6][4]strip{
	Up: {
		{Front, [3]cell{{0, 0}, {0, 1}, {0, 2}}},
		{Left, [3]cell{{0, 0}, {0, 1}, {0, 2}}},
		{Back, [3]cell{{0, 0}, {0, 1}, {0, 2}}},
		{Right, [3]cell{{0, 0}, {0, 1}, {0, 2}}},
	},
	Down: {
		{Front, [3]cell{{2, 0}, {2, 1}, {2, 2}}},
		{Right, [3]cell{{2, 0}, {2, 1}, {2, 2}}},
		{Back, [3]cell{{2, 0}, {2, 1}, {2, 2}}},
		{Left, [3]cell{{2, 0}, {2, 1}, {2, 2}}},
	},
	Right: {
		{Up, [3]cell{{0, 2}, {1, 2}, {2, 2}}},
		{Back, [3]cell{{2, 0}, {1, 0}, {0, 0}}},
		{Down, [3]cell{{0, 2}, {1, 2}, {2, 2}}},
		{Front, [3]cell{{0, 2}, {1, 2}, {2, 2}}},
	},
	Left: {
		{Up, [3]cell{{0, 0}, {1, 0}, {2, 0}}},
		{Front, [3]cell{{0, 0}, {1, 0}, {2, 0}}},
		{Down, [3]cell{{0, 0}, {1, 0}, {2, 0}}},
		{Back, [3]cell{{2, 2}, {1, 2}, {0, 2}}},
	},
	Front: {
		{Up, [3]cell{{2, 0}, {2, 1}, {2, 2}}},
		{Right, [3]cell{{0, 0}, {1, 0}, {2, 0}}},
		{Down, [3]cell{{0, 2}, {0, 1}, {0, 0}}},
		{Left, [3]cell{{2, 2}, {1, 2}, {0, 2}}},
	},
	Back: {
		{Up, [3]cell{{0, 0}, {0, 1}, {0, 2}}},
		{Left, [3]cell{{2, 0}, {1, 0}, {0, 0}}},
		{Down, [3]cell{{2, 2}, {2, 1}, {2, 0}}},
		{Right, [3]cell{{0, 2}, {1, 2}, {2, 2}}},
	},
}

// Apply applies moves to the cube in place, in order. It permutes the
// 54 facelet values and never fails: the grid shape is maintained by
// construction, and unset facelets permute like any other value.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.applyOne(m)
	}
}

func (c *Cube) applyOne(m Move) {
	switch m.Turn {
	case CW:
		c.rotateFaceCW(m.Face)
		c.cycleBorderCW(m.Face)
	case CCW:
		c.rotateFaceCCW(m.Face)
		c.cycleBorderCCW(m.Face)
	case Double:
		c.rotateFaceCW(m.Face)
		c.rotateFaceCW(m.Face)
		c.cycleBorderCW(m.Face)
		c.cycleBorderCW(m.Face)
	}
}

// ApplyMoves applies a slice of moves in order.
func (c *Cube) ApplyMoves(moves []Move) {
	c.Apply(moves...)
}

// ApplyNotation parses a space-separated move sequence and applies it.
// The cube is not modified if any token is invalid.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.ApplyMoves(moves)
	return nil
}

// rotateFaceCW rotates a face's own grid 90 degrees clockwise:
// the facelet at (r, c) moves to (c, 2-r).
func (c *Cube) rotateFaceCW(face Face) {
	old := c.Grid[face]
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			c.Grid[face][r][col] = old[2-col][r]
		}
	}
}

// rotateFaceCCW rotates a face's own grid 90 degrees counter-clockwise:
// the facelet at (r, c) moves to (2-c, r).
func (c *Cube) rotateFaceCCW(face Face) {
	old := c.Grid[face]
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			c.Grid[face][r][col] = old[col][2-r]
		}
	}
}

// cycleBorderCW shifts the four border strips one step in clockwise
// flow order: strip 0 -> 1 -> 2 -> 3 -> 0.
func (c *Cube) cycleBorderCW(face Face) {
	cyc := &borderCycles[face]
	saved := c.readStrip(&cyc[3])
	c.copyStrip(&cyc[3], c.readStrip(&cyc[2]))
	c.copyStrip(&cyc[2], c.readStrip(&cyc[1]))
	c.copyStrip(&cyc[1], c.readStrip(&cyc[0]))
	c.copyStrip(&cyc[0], saved)
}

// cycleBorderCCW runs the same cycle in the opposite direction:
// strip 0 -> 3 -> 2 -> 1 -> 0.
func (c *Cube) cycleBorderCCW(face Face) {
	cyc := &borderCycles[face]
	saved := c.readStrip(&cyc[0])
	c.copyStrip(&cyc[0], c.readStrip(&cyc[1]))
	c.copyStrip(&cyc[1], c.readStrip(&cyc[2]))
	c.copyStrip(&cyc[2], c.readStrip(&cyc[3]))
	c.copyStrip(&cyc[3], saved)
}

func (c *Cube) readStrip(s *strip) [3]Color {
	var out [3]Color
	for i, cl := range s.cells {
		out[i] = c.Grid[s.face][cl.row][cl.col]
	}
	return out
}

func (c *Cube) copyStrip(s *strip, colors [3]Color) {
	for i, cl := range s.cells {
		c.Grid[s.face][cl.row][cl.col] = colors[i]
	}
}
