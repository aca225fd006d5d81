package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubekit/cubekit"
	"github.com/cubekit/cubekit/internal/storage"
)

// colorStyles maps facelet colors to terminal swatches.
var colorStyles = map[cubekit.Color]lipgloss.Style{
	cubekit.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")),
	cubekit.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("235")),
	cubekit.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	cubekit.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("235")),
	cubekit.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("255")),
	cubekit.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),
	cubekit.Unset:  lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("255")),
}

// swatch renders one facelet as a colored cell.
func swatch(c cubekit.Color) string {
	style, ok := colorStyles[c]
	if !ok {
		style = colorStyles[cubekit.Unset]
	}
	return style.Render(" " + c.String() + " ")
}

// renderNet renders the cube as a colored unfolded net.
func renderNet(c *cubekit.Cube) string {
	var b strings.Builder
	pad := strings.Repeat(" ", 9)

	row := func(f cubekit.Face, r int) string {
		var cells []string
		for col := 0; col < 3; col++ {
			cells = append(cells, swatch(c.Get(f, r, col)))
		}
		return strings.Join(cells, "")
	}

	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(cubekit.Up, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		for _, f := range []cubekit.Face{cubekit.Left, cubekit.Front, cubekit.Right, cubekit.Back} {
			b.WriteString(row(f, r))
		}
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(cubekit.Down, r) + "\n")
	}

	return b.String()
}

// readCubeArg decodes the cube-string argument shared by most commands.
func readCubeArg(args []string) (*cubekit.Cube, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("expected a 54-character cube string argument")
	}
	cube, err := cubekit.FromNotation(strings.TrimSpace(args[0]))
	if err != nil {
		return nil, err
	}
	return cube, nil
}

// openDB opens the history database at the configured path.
func openDB() (*storage.DB, error) {
	path := dbPath()
	if path == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return storage.Open(path)
}
