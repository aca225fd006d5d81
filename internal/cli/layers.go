package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubekit/cubekit"
	"github.com/cubekit/cubekit/internal/storage"
)

var layersNoStore bool

var layersCmd = &cobra.Command{
	Use:   "layers <cube-string>",
	Short: "Run the scripted layer-by-layer stage player",
	Long: `Apply the beginner's layer-by-layer stage algorithms to a cube string
and print the moves applied and the resulting configuration.

The stage player applies a bounded script of fixed algorithms; it does
not search, and its result is not guaranteed to be solved. Use the
'solve' command for an actual solution.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayers,
}

func init() {
	rootCmd.AddCommand(layersCmd)
	layersCmd.Flags().BoolVar(&layersNoStore, "no-store", false, "Do not record the result in history")
}

func runLayers(cmd *cobra.Command, args []string) error {
	cube, err := readCubeArg(args)
	if err != nil {
		return err
	}

	notation, err := cube.Notation()
	if err != nil {
		return err
	}

	moves := cubekit.NewLayerSolver(cube).Solve()
	sequence := cubekit.FormatMoves(moves)

	fmt.Printf("Applied %d moves: %s\n", len(moves), sequence)
	fmt.Println()
	fmt.Print(renderNet(cube))
	fmt.Println()
	if cube.IsSolved() {
		fmt.Println("Cube is solved")
	} else {
		fmt.Println("Phase reached:", cube.DetectPhase().DisplayName())
	}

	if !layersNoStore && len(moves) > 0 {
		if err := recordSolve(notation, sequence, len(moves), storage.SourceLayers); err != nil {
			fmt.Fprintf(os.Stderr, "warning: recording solve: %v\n", err)
		}
	}

	return nil
}
