package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubekit/cubekit"
)

var paintCmd = &cobra.Command{
	Use:   "paint",
	Short: "Interactively paint a cube configuration",
	Long: `Start an interactive TUI for painting a cube facelet by facelet.

Keyboard shortcuts:
  arrows/hjkl - move the cursor across the unfolded net
  1-6         - select a color (white, red, blue, yellow, orange, green)
  space/enter - paint the facelet under the cursor
  x           - clear the facelet under the cursor
  r           - reset the whole cube
  v           - validate the configuration
  s           - send the configuration to the external solver
  q/Esc       - quit (prints the cube string if complete)`,
	RunE: runPaint,
}

func init() {
	rootCmd.AddCommand(paintCmd)
}

// Styles
var (
	paintTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	paintStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	paintErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	paintOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	selectedSwatchStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true)
)

// palette maps the number keys to colors.
var palette = []cubekit.Color{
	cubekit.White, cubekit.Red, cubekit.Blue,
	cubekit.Yellow, cubekit.Orange, cubekit.Green,
}

// netCell locates one facelet on the unfolded net. The net is a 9x12
// logical grid:
//
//	rows 0-2, cols 3-5   Up
//	rows 3-5, cols 0-11  Left Front Right Back
//	rows 6-8, cols 3-5   Down
func netCell(row, col int) (cubekit.Face, int, int, bool) {
	switch {
	case row >= 0 && row < 3 && col >= 3 && col < 6:
		return cubekit.Up, row, col - 3, true
	case row >= 6 && row < 9 && col >= 3 && col < 6:
		return cubekit.Down, row - 6, col - 3, true
	case row >= 3 && row < 6 && col >= 0 && col < 12:
		faces := []cubekit.Face{cubekit.Left, cubekit.Front, cubekit.Right, cubekit.Back}
		return faces[col/3], row - 3, col % 3, true
	default:
		return 0, 0, 0, false
	}
}

// Messages
type solveResultMsg struct {
	solution string
	err      error
}

type paintModel struct {
	cube     *cubekit.Cube
	selected cubekit.Color
	curRow   int // position on the 9x12 net grid
	curCol   int
	status   string
	isError  bool
	solving  bool
	quitting bool
}

func newPaintModel() paintModel {
	return paintModel{
		cube:     cubekit.New(),
		selected: cubekit.White,
		curRow:   0,
		curCol:   3,
		status:   "Pick a color with 1-6, paint with space",
	}
}

func (m paintModel) Init() tea.Cmd {
	return nil
}

func (m paintModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case solveResultMsg:
		m.solving = false
		if msg.err != nil {
			m.status = "Solve failed: " + msg.err.Error()
			m.isError = true
		} else {
			m.status = "Solution: " + msg.solution
			m.isError = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m paintModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		m.move(-1, 0)
	case "down", "j":
		m.move(1, 0)
	case "left", "h":
		m.move(0, -1)
	case "right", "l":
		m.move(0, 1)

	case "1", "2", "3", "4", "5", "6":
		m.selected = palette[int(msg.String()[0]-'1')]
		m.status = "Selected " + m.selected.Name()
		m.isError = false

	case " ", "enter":
		f, r, c, ok := netCell(m.curRow, m.curCol)
		if ok {
			m.cube.Set(f, r, c, m.selected)
			m.status = fmt.Sprintf("Painted %s(%d,%d) %s", f, r, c, m.selected.Name())
			m.isError = false
		}

	case "x":
		f, r, c, ok := netCell(m.curRow, m.curCol)
		if ok {
			m.cube.Set(f, r, c, cubekit.Unset)
			m.status = fmt.Sprintf("Cleared %s(%d,%d)", f, r, c)
			m.isError = false
		}

	case "r":
		m.cube.Reset()
		m.status = "Cube reset"
		m.isError = false

	case "v":
		ok, diag := m.cube.Validate()
		m.status = diag
		m.isError = !ok

	case "s":
		if m.solving {
			break
		}
		if ok, diag := m.cube.Validate(); !ok {
			m.status = diag
			m.isError = true
			break
		}
		m.solving = true
		m.status = "Solving..."
		m.isError = false
		return m, solveCube(m.cube.Clone())
	}

	return m, nil
}

// move steps the cursor on the net grid, skipping the blank regions
// beside the Up and Down faces.
func (m *paintModel) move(dr, dc int) {
	row, col := m.curRow, m.curCol
	for {
		row += dr
		col += dc
		if row < 0 || row > 8 || col < 0 || col > 11 {
			return
		}
		if _, _, _, ok := netCell(row, col); ok {
			m.curRow, m.curCol = row, col
			return
		}
	}
}

// solveCube calls the external solver off the UI loop.
func solveCube(cube *cubekit.Cube) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client := cubekit.NewSolverClient(solverURL())
		moves, err := client.Solve(ctx, cube)
		if err != nil {
			return solveResultMsg{err: err}
		}
		return solveResultMsg{solution: cubekit.FormatMoves(moves)}
	}
}

func (m paintModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(paintTitleStyle.Render("cubekit paint"))
	b.WriteString("\n\n")

	for row := 0; row < 9; row++ {
		for col := 0; col < 12; col++ {
			f, r, c, ok := netCell(row, col)
			if !ok {
				b.WriteString("   ")
				continue
			}
			cell := swatch(m.cube.Get(f, r, c))
			if row == m.curRow && col == m.curCol {
				cell = cursorStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nPalette: ")
	for i, color := range palette {
		cell := swatch(color)
		if color == m.selected {
			cell = selectedSwatchStyle.Render(cell)
		}
		b.WriteString(fmt.Sprintf("%d:%s ", i+1, cell))
	}
	b.WriteString("\n\n")

	style := paintOKStyle
	if m.isError {
		style = paintErrorStyle
	}
	b.WriteString(style.Render(m.status))
	b.WriteString("\n\n")
	b.WriteString(paintStatusStyle.Render("arrows move · space paint · v validate · s solve · q quit"))
	b.WriteByte('\n')

	return b.String()
}

func runPaint(cmd *cobra.Command, args []string) error {
	model := newPaintModel()
	p := tea.NewProgram(model)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running paint TUI: %w", err)
	}

	// Print the finished configuration so it can be piped into
	// 'cubekit solve'.
	if m, ok := final.(paintModel); ok {
		if s, err := m.cube.Notation(); err == nil {
			fmt.Println(s)
		}
	}

	return nil
}
