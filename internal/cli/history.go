package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubekit/cubekit/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet")
		return nil
	}

	for _, s := range solves {
		fmt.Printf("%s  %-8s  %3d moves  %s\n",
			s.CreatedAt.Local().Format(time.DateTime), s.Source, s.MoveCount, s.SolveID)
		fmt.Printf("    %s\n", s.Solution)
	}

	return nil
}
