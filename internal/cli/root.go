// Package cli implements the command-line interface for cubekit.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

// Config keys.
const (
	cfgKeySolverURL = "solver_url"
	cfgKeyDBPath    = "db"

	defaultSolverURL = "http://localhost:5000"
)

var (
	// Global flags
	flagSolverURL string
	flagDBPath    string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubekit",
	Short: "Rubik's cube state and solver tool",
	Long: `cubekit - model, validate, and solve 3x3 Rubik's cube configurations.

Cube configurations are exchanged as 54-character facelet strings in the
standard solver notation: faces U, R, F, D, L, B, each row-major, each
letter naming the solved face a sticker belongs on.

Paint a configuration interactively, validate it, apply move sequences,
or send it to an external search solver for an optimal solution.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&flagSolverURL, "solver-url", "", "Base URL of the external solver service")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "History database path (default: ~/.cubekit/cubekit.db)")
}

// initConfig loads ~/.cubekit/config.yaml if present. Flags override
// config values.
func initConfig() {
	viper.SetDefault(cfgKeySolverURL, defaultSolverURL)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(home, ".cubekit"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}
}

// solverURL returns the solver base URL from flag or config.
func solverURL() string {
	if flagSolverURL != "" {
		return flagSolverURL
	}
	return viper.GetString(cfgKeySolverURL)
}

// dbPath returns the history database path from flag or config, or ""
// for the default location.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return viper.GetString(cfgKeyDBPath)
}
