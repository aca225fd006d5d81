package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <cube-string> <moves...>",
	Short: "Apply a move sequence to a configuration",
	Long: `Apply a sequence of moves in standard notation to a cube string and
print the resulting configuration.

Example:
  cubekit apply UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB R U R' U'`,
	Args: cobra.MinimumNArgs(2),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	cube, err := readCubeArg(args)
	if err != nil {
		return err
	}

	if err := cube.ApplyNotation(strings.Join(args[1:], " ")); err != nil {
		return err
	}

	out, err := cube.Notation()
	if err != nil {
		return err
	}

	fmt.Println(out)
	fmt.Println()
	fmt.Print(renderNet(cube))
	return nil
}
