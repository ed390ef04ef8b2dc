package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mystic-flutter/internal/games/flutter"
	"github.com/vovakirdan/mystic-flutter/internal/platform/tui"
	"github.com/vovakirdan/mystic-flutter/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journaled runs",
	Long: `Show the most recent finished rounds from the run journal.

With --interactive the runs open in a browser; pressing enter on a run
re-simulates it and reports whether the recorded score reproduces.

Examples:
  mysticflutter runs
  mysticflutter runs --limit 50
  mysticflutter runs --interactive
  mysticflutter runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every journaled run")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run journal cleared.")

	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		id, err := tui.BrowseRuns(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if id != 0 && !verifyRun(store, id) {
			os.Exit(1)
		}

	default:
		printRuns(store)
	}
}

func printRuns(store *storage.Store) {
	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run Journal - Mystic Flutter")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mysticflutter play' and finish a round to journal it.")
		return
	}

	fmt.Printf("  %-6s  %-8s  %-8s  %-9s  %s\n", "ID", "Score", "Ticks", "Size", "Date")
	fmt.Printf("  %-6s  %-8s  %-8s  %-9s  %s\n", "--", "-----", "-----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-6d  %-8s  %-8d  %-9s  %s\n",
			r.ID,
			flutter.FormatScore(r.Score),
			r.Ticks,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	if total, err := store.CountRuns(); err == nil && total > len(runs) {
		fmt.Println()
		fmt.Printf("Showing %d of %d runs.\n", len(runs), total)
	}
}
