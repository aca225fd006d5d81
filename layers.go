package cubekit

// LayerSolver is a scripted player for the beginner's layer-by-layer
// method: seven named stages, each a fixed short algorithm applied a
// bounded number of times. A stage stops early once its guard predicate
// is satisfied, but the guards are advisory only — the player makes no
// claim that the moves it applies bring the cube closer to solved. Its
// contract is: apply at most the scripted sequences and return the
// moves actually applied.
type LayerSolver struct {
	cube  *Cube
	moves []Move
}

// layerStage is one scripted stage of the method.
type layerStage struct {
	key       string
	algorithm string // fixed move sequence, standard notation
	followUp  string // applied after the algorithm on each repeat, if any
	repeats   int
	done      func(*Cube) bool
}

// layerStages scripts the classic beginner's method:
//  1. White cross        F R U R' U' F'
//  2. White corners      R U R' U'            (x4, advancing with U)
//  3. Middle layer       right- then left-hand insert
//  4. Yellow cross       F R U R' U' F'       (x3)
//  5. Yellow edges       F R U R' U' F'       (x4, advancing with U)
//  6. Corner position    U R U' L' U R' U' L  (x3)
//  7. Corner orientation U R' U' R            (x3 per corner, x4 corners)
var layerStages = []layerStage{
	{
		key:       "white_cross",
		algorithm: "F R U R' U' F'",
		repeats:   1,
		done:      (*Cube).IsWhiteCrossComplete,
	},
	{
		key:       "white_corners",
		algorithm: "R U R' U'",
		followUp:  "U",
		repeats:   4,
		done:      (*Cube).IsFirstLayerComplete,
	},
	{
		key:       "middle_layer",
		algorithm: "U R U' R' U' F' U F U' L' U L U F U' F'",
		repeats:   1,
		done:      (*Cube).IsSecondLayerComplete,
	},
	{
		key:       "yellow_cross",
		algorithm: "F R U R' U' F'",
		repeats:   3,
		done:      (*Cube).IsYellowCrossComplete,
	},
	{
		key:       "yellow_edges",
		algorithm: "F R U R' U' F'",
		followUp:  "U",
		repeats:   4,
		// No dedicated predicate distinguishes placed edges from a bare
		// yellow cross; this stage always runs its bounded repeats.
	},
	{
		key:       "corner_position",
		algorithm: "U R U' L' U R' U' L",
		repeats:   3,
		done:      (*Cube).AreBottomCornersPositioned,
	},
	{
		key:       "corner_orientation",
		algorithm: "U R' U' R U R' U' R U R' U' R",
		followUp:  "U",
		repeats:   4,
		done:      (*Cube).IsSolved,
	},
}

// NewLayerSolver creates a player over the given cube. The cube is
// mutated in place as stages run.
func NewLayerSolver(c *Cube) *LayerSolver {
	return &LayerSolver{cube: c}
}

// Solve runs all seven stages and returns the concatenated list of
// moves applied. The result is not guaranteed to solve the cube.
func (s *LayerSolver) Solve() []Move {
	for _, stage := range layerStages {
		s.runStage(stage)
		if s.cube.IsSolved() {
			break
		}
	}
	return s.moves
}

// runStage applies one stage's algorithm up to its repeat bound,
// stopping early if the stage guard reports completion.
func (s *LayerSolver) runStage(stage layerStage) {
	for i := 0; i < stage.repeats; i++ {
		if stage.done != nil && stage.done(s.cube) {
			return
		}
		s.play(stage.algorithm)
		if stage.followUp != "" {
			s.play(stage.followUp)
		}
	}
}

// play applies a fixed notation sequence and records it. The stage
// algorithms are compile-time constants, so parsing cannot fail.
func (s *LayerSolver) play(notation string) {
	moves, err := ParseMoves(notation)
	if err != nil {
		panic("cubekit: bad scripted algorithm: " + notation)
	}
	s.cube.ApplyMoves(moves)
	s.moves = append(s.moves, moves...)
}

// Moves returns the moves applied so far.
func (s *LayerSolver) Moves() []Move {
	return s.moves
}
