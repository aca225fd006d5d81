package cubekit

// Face represents a cube face. The constants are declared in solver
// string order (U, R, F, D, L, B) so that encoding a cube walks the
// faces in index order.
type Face int

const (
	Up    Face = 0 // U (White when solved)
	Right Face = 1 // R (Red when solved)
	Front Face = 2 // F (Blue when solved)
	Down  Face = 3 // D (Yellow when solved)
	Left  Face = 4 // L (Orange when solved)
	Back  Face = 5 // B (Green when solved)
)

// Faces lists all six faces in solver string order.
var Faces = []Face{Up, Right, Front, Down, Left, Back}

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Right:
		return "R"
	case Front:
		return "F"
	case Down:
		return "D"
	case Left:
		return "L"
	case Back:
		return "B"
	default:
		return "?"
	}
}

// valid reports whether f is one of the six faces.
func (f Face) valid() bool {
	return f >= Up && f <= Back
}

// FaceFromLetter returns the face for a notation letter.
func FaceFromLetter(ch byte) (Face, bool) {
	switch ch {
	case 'U', 'u':
		return Up, true
	case 'R', 'r':
		return Right, true
	case 'F', 'f':
		return Front, true
	case 'D', 'd':
		return Down, true
	case 'L', 'l':
		return Left, true
	case 'B', 'b':
		return Back, true
	default:
		return 0, false
	}
}

// solvedColor returns the color of a face in the canonical solved state:
// white on top, blue in front.
func solvedColor(f Face) Color {
	switch f {
	case Up:
		return White
	case Right:
		return Red
	case Front:
		return Blue
	case Down:
		return Yellow
	case Left:
		return Orange
	case Back:
		return Green
	default:
		return Unset
	}
}
