package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <cube-string>",
	Short: "Validate a cube configuration",
	Long: `Check whether a 54-character cube string describes a solver-ready
configuration: every facelet colored, each color used exactly 9 times,
exactly 6 distinct colors.

Note that a configuration can pass these checks and still be physically
unreachable; the external solver reports that case when asked to solve.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cube, err := readCubeArg(args)
	if err != nil {
		return err
	}

	ok, diag := cube.Validate()
	if !ok {
		return fmt.Errorf("invalid: %s", diag)
	}

	fmt.Println("OK:", diag)
	fmt.Println()
	fmt.Print(renderNet(cube))
	return nil
}
