package cubekit

// Color represents a facelet color. The zero value is Unset, so a fresh
// Cube starts with every facelet unpainted.
type Color byte

const (
	Unset  Color = 0 // No color painted yet
	White  Color = 1 // Up face when solved
	Red    Color = 2 // Right face when solved
	Blue   Color = 3 // Front face when solved
	Yellow Color = 4 // Down face when solved
	Orange Color = 5 // Left face when solved
	Green  Color = 6 // Back face when solved
)

// Colors lists the six real facelet colors, in solved-face order
// (Up, Right, Front, Down, Left, Back).
var Colors = []Color{White, Red, Blue, Yellow, Orange, Green}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Blue:
		return "B"
	case Green:
		return "G"
	case Unset:
		return "."
	default:
		return "?"
	}
}

// Name returns the lowercase color name used in diagnostics.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Unset:
		return "unset"
	default:
		return "unknown"
	}
}

// IsReal reports whether c is one of the six cube colors (not the
// Unset sentinel).
func (c Color) IsReal() bool {
	return c >= White && c <= Green
}
