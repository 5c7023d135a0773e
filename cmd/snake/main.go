// snake is a terminal snake game: steer a growing snake around the board,
// eat food for points and catch the time-limited bonus before it expires.
//
// Usage:
//
//	snake                       - Play with default settings
//	snake --difficulty hard     - Faster tick rate
//	snake --seed 42             - Reproducible food placement
//	snake --config ./my.yaml    - Custom gameplay config
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Play snake in your terminal",
	Long: `A classic snake game for the terminal.

Controls:
  WASD/Arrows - Steer the snake
  Hold a direction key to boost (half the tick delay)
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Scoring:
  Food (*) is worth 10 points. Occasionally a bonus ($) appears for a
  short time; it is worth 50 points and grows the snake by five segments.

Difficulty presets:
  easy   - 130ms between ticks
  normal - 100ms between ticks
  hard   - 70ms between ticks`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.tui-snake/debug.log")

	log.SetReportTimestamp(false)
}
