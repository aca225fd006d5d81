package cubekit

// Phase detection for the layer-by-layer method.
// Canonical orientation: white on top (Up), blue in front.
//
// Adjacency used below (dictated by the border tables in apply.go):
// side faces touch Up with row 0 and Down with row 2; the Up face
// touches Back with row 0 and Front with row 2; the Down face touches
// Front with row 0 and Back with row 2.

// uEdgeNeighbors pairs each Up-face edge cell with the side facelet of
// the same physical edge piece.
var uEdgeNeighbors = []struct {
	uRow, uCol int
	side       Face
}{
	{0, 1, Back},
	{1, 0, Left},
	{1, 2, Right},
	{2, 1, Front},
}

// dCorners lists the Down-face corner cells with the two side facelets
// of the same corner piece.
var dCorners = []struct {
	dRow, dCol int
	s1         Face
	r1, c1     int
	s2         Face
	r2, c2     int
}{
	{0, 0, Front, 2, 0, Left, 2, 2},
	{0, 2, Front, 2, 2, Right, 2, 0},
	{2, 2, Back, 2, 0, Right, 2, 2},
	{2, 0, Back, 2, 2, Left, 2, 0},
}

func (c *Cube) center(f Face) Color {
	return c.Grid[f][1][1]
}

// IsWhiteCrossComplete checks that the 4 white edges are on the Up face
// with each edge's side color matching the adjacent center.
func (c *Cube) IsWhiteCrossComplete() bool {
	for _, e := range uEdgeNeighbors {
		if c.Grid[Up][e.uRow][e.uCol] != White {
			return false
		}
		if c.Grid[e.side][0][1] != c.center(e.side) {
			return false
		}
	}
	return true
}

// IsFirstLayerComplete checks white cross plus white corners: the whole
// Up face is white and the top corners of each side face match their
// centers.
func (c *Cube) IsFirstLayerComplete() bool {
	if !c.IsWhiteCrossComplete() {
		return false
	}
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			if c.Grid[Up][r][col] != White {
				return false
			}
		}
	}
	for _, f := range []Face{Front, Right, Back, Left} {
		center := c.center(f)
		if c.Grid[f][0][0] != center || c.Grid[f][0][2] != center {
			return false
		}
	}
	return true
}

// IsSecondLayerComplete checks the first layer plus the middle-layer
// edges on each side face.
func (c *Cube) IsSecondLayerComplete() bool {
	if !c.IsFirstLayerComplete() {
		return false
	}
	for _, f := range []Face{Front, Right, Back, Left} {
		center := c.center(f)
		if c.Grid[f][1][0] != center || c.Grid[f][1][2] != center {
			return false
		}
	}
	return true
}

// IsYellowCrossComplete checks the second layer plus yellow showing on
// the 4 Down-face edges. Edge positions are not checked.
func (c *Cube) IsYellowCrossComplete() bool {
	if !c.IsSecondLayerComplete() {
		return false
	}
	for _, pos := range [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}} {
		if c.Grid[Down][pos[0]][pos[1]] != Yellow {
			return false
		}
	}
	return true
}

// AreBottomCornersPositioned checks that each bottom corner carries the
// color set of its three adjacent centers, ignoring orientation.
func (c *Cube) AreBottomCornersPositioned() bool {
	if !c.IsYellowCrossComplete() {
		return false
	}
	for _, corner := range dCorners {
		got := colorSet(
			c.Grid[Down][corner.dRow][corner.dCol],
			c.Grid[corner.s1][corner.r1][corner.c1],
			c.Grid[corner.s2][corner.r2][corner.c2],
		)
		want := colorSet(c.center(Down), c.center(corner.s1), c.center(corner.s2))
		if got != want {
			return false
		}
	}
	return true
}

// AreBottomCornersOriented additionally requires yellow on the Down
// face for every corner.
func (c *Cube) AreBottomCornersOriented() bool {
	if !c.AreBottomCornersPositioned() {
		return false
	}
	for _, corner := range dCorners {
		if c.Grid[Down][corner.dRow][corner.dCol] != Yellow {
			return false
		}
	}
	return true
}

// colorSet encodes an unordered color triple as a bitmask.
func colorSet(a, b, c Color) uint {
	return 1<<a | 1<<b | 1<<c
}

// DetectPhase returns the furthest layer-by-layer phase the cube has
// reached.
func (c *Cube) DetectPhase() Phase {
	switch {
	case c.IsSolved():
		return PhaseSolved
	case c.AreBottomCornersOriented():
		return PhaseYellowOriented
	case c.AreBottomCornersPositioned():
		return PhaseYellowCorners
	case c.IsYellowCrossComplete():
		return PhaseYellowCross
	case c.IsSecondLayerComplete():
		return PhaseSecondLayer
	case c.IsFirstLayerComplete():
		return PhaseFirstLayer
	case c.IsWhiteCrossComplete():
		return PhaseWhiteCross
	default:
		return PhaseScrambled
	}
}
