package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mystic-flutter/internal/core"
	"github.com/vovakirdan/mystic-flutter/internal/games/flutter"
	"github.com/vovakirdan/mystic-flutter/internal/platform/tui"
	"github.com/vovakirdan/mystic-flutter/internal/registry"
	"github.com/vovakirdan/mystic-flutter/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing. The game defaults to flutter.

Controls:
  Space/Up/W, click    - Flap
  S, hold click 0.5s   - Slow time
  P/Esc                - Pause
  R, Space             - Restart (after game over)
  Ctrl+S               - Save a screenshot
  Q/Ctrl+C             - Quit

Every finished round is journaled to --db and can be verified with
'mysticflutter replay <id>'.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  mysticflutter play
  mysticflutter play --difficulty hard
  mysticflutter play --config ./my-flutter.yaml --log-file flutter.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded by default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := flutter.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mysticflutter list' to see available games.")
		os.Exit(1)
	}

	// The alt screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := mustLogger(logOut)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height - 1, // help line
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	flutter.SetConfigPath(flagConfig)
	flutter.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
