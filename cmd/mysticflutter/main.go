// mysticflutter is a terminal rendition of Mystic Flutter: keep a falling
// bird alive through gap obstacles, drifting gravity zones and a slow-time
// power on a cooldown.
//
// Usage:
//
//	mysticflutter list              - List available games
//	mysticflutter play              - Play in the terminal
//	mysticflutter sim               - Run the autopilot headlessly
//	mysticflutter runs              - List journaled runs
//	mysticflutter replay <id>       - Re-simulate a run and verify its score
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set run journal path (default: ~/.mysticflutter/runs.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Game tuning flags shared by play and sim
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mysticflutter",
	Short: "Mystic Flutter - a gravity-bending flapper for your terminal",
	Long: `Mystic Flutter drops a bird through an endless stream of gap obstacles.
Gravity zones drift through the playfield and bend the fall; a slow-time
power stretches a few seconds when the gaps get tight.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  sim      - Run the autopilot headlessly
  runs     - List journaled runs
  replay   - Re-simulate a journaled run

Examples:
  mysticflutter play
  mysticflutter play --difficulty hard
  mysticflutter sim --rounds 5 --seed 42
  mysticflutter runs --interactive
  mysticflutter replay 12`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mysticflutter/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mysticflutter",
		Level:           level,
	}), nil
}

// mustLogger is newLogger for commands, exiting on a bad level.
func mustLogger(w io.Writer) *log.Logger {
	logger, err := newLogger(w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}
