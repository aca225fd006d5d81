package cubekit

// Phase represents progress through the layer-by-layer method.
// Phases are ordered from Scrambled (0) to Solved (7), allowing
// comparison with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates no layer milestone is complete.
	PhaseScrambled Phase = iota

	// PhaseWhiteCross indicates the white cross is complete: the 4
	// white edges sit on the Up face with their side colors matching
	// the adjacent centers.
	PhaseWhiteCross

	// PhaseFirstLayer indicates the full white layer is complete.
	PhaseFirstLayer

	// PhaseSecondLayer indicates the middle layer edges are placed.
	PhaseSecondLayer

	// PhaseYellowCross indicates the 4 Down-face edges show yellow.
	PhaseYellowCross

	// PhaseYellowCorners indicates the bottom corners are in position
	// (possibly mis-oriented).
	PhaseYellowCorners

	// PhaseYellowOriented indicates the bottom corners show yellow on
	// the Down face.
	PhaseYellowOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseYellowCross:
		return "yellow_cross"
	case PhaseYellowCorners:
		return "yellow_corners"
	case PhaseYellowOriented:
		return "yellow_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer"
	case PhaseYellowCross:
		return "Yellow Cross"
	case PhaseYellowCorners:
		return "Yellow Corners Positioned"
	case PhaseYellowOriented:
		return "Yellow Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}
