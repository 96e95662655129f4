// frogger is a terminal Frogger: hop across the road and the river to fill
// every goal slot.
//
// Usage:
//
//	frogger play              - Play in this terminal
//	frogger serve             - Start SSH server for remote play
//	frogger scores            - Show high scores and recorded runs
//	frogger replay <run-id>   - Re-run a recorded game and print its result
//	frogger config            - Print the default layout YAML
//	frogger list              - List registered games
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--db <path>      - Set database path (default: ~/.frogger/scores.db)
//	--config <path>  - Use a custom layout YAML
//	--verbose        - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "frogger",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger in your terminal",
	Long: `Guide the frog across a busy road and a river of drifting logs.
Land on an open goal slot to score; a car, the water or a wall ends the run.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores and recorded runs
  replay   - Re-run a recorded game
  config   - Print the default layout

Examples:
  frogger play
  frogger play --sound
  frogger serve --ssh :2222
  frogger replay 12`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		frogger.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.frogger/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom layout YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}
