package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubekit/cubekit"
	"github.com/cubekit/cubekit/internal/storage"
)

var (
	solveTimeout time.Duration
	solveNoStore bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <cube-string>",
	Short: "Solve a configuration with the external search solver",
	Long: `Send a 54-character cube string to the external two-phase search
solver and print the returned move sequence. Each result is recorded in
the history database unless --no-store is given.

The solver service URL comes from --solver-url or the solver_url key in
~/.cubekit/config.yaml.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "Solve request timeout")
	solveCmd.Flags().BoolVar(&solveNoStore, "no-store", false, "Do not record the result in history")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cube, err := readCubeArg(args)
	if err != nil {
		return err
	}

	notation, err := cube.Notation()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
	defer cancel()

	client := cubekit.NewSolverClient(solverURL(), cubekit.WithTimeout(solveTimeout))
	moves, err := client.Solve(ctx, cube)
	if err != nil {
		return err
	}

	solution := cubekit.FormatMoves(moves)
	fmt.Printf("Solution (%d moves): %s\n", len(moves), solution)

	// Sanity check: replay the solution locally.
	check := cube.Clone()
	check.ApplyMoves(moves)
	if check.IsSolved() {
		fmt.Println("Verified: solution reaches the solved state")
	} else {
		fmt.Println("Warning: solution does not reach the solved state locally")
	}

	if !solveNoStore {
		if err := recordSolve(notation, solution, len(moves), storage.SourceExternal); err != nil {
			fmt.Fprintf(os.Stderr, "warning: recording solve: %v\n", err)
		}
	}

	return nil
}

// recordSolve appends a result to the history database.
func recordSolve(notation, solution string, moveCount int, source string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = storage.NewSolveRepository(db).Create(notation, solution, moveCount, source)
	return err
}
