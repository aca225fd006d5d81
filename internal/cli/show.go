package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <cube-string>",
	Short: "Render a configuration as a colored net",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cube, err := readCubeArg(args)
	if err != nil {
		return err
	}

	fmt.Print(renderNet(cube))
	fmt.Println()
	fmt.Println("Phase:", cube.DetectPhase().DisplayName())
	return nil
}
