// flappybird is a terminal rendition of the one-button pipe-dodging
// arcade game.
//
// Usage:
//
//	flappybird                - Play the game
//	flappybird play           - Play the game
//	flappybird simulate       - Run a headless deterministic simulation
//	flappybird config         - Print the configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappybird",
	Short: "Flappy Bird in your terminal",
	Long: `flappybird is a terminal rendition of the one-button arcade game:
tap to flap, slip through the pipe gaps, one hit ends the run.

Available commands:
  play      - Play the game (also the default when no command is given)
  simulate  - Run a headless deterministic simulation
  config    - Print the configuration

Examples:
  flappybird
  flappybird play --fps 30
  flappybird simulate --seed 42 --ticks 2000
  flappybird config --effective`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
