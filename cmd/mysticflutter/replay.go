package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mystic-flutter/internal/games/flutter"
	"github.com/vovakirdan/mystic-flutter/internal/replay"
	"github.com/vovakirdan/mystic-flutter/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a journaled run",
	Long: `Replay the recorded input of a run against a fresh world seeded the same
way, and check that it ends on the same tick with the same score.
Exits with status 1 when the run does not reproduce.

Examples:
  mysticflutter replay 12`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}

	ok := verifyRun(store, id)
	store.Close()
	if !ok {
		os.Exit(1)
	}
}

// verifyRun replays one run, prints the outcome and reports whether it matched.
func verifyRun(store *storage.Store, id int64) bool {
	logger := mustLogger(os.Stderr)

	j, err := replay.Load(store, id)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no run with id %d\n", id)
		return false
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading run %d: %v\n", id, err)
		return false
	}

	logger.Debug("replaying", "id", id, "seed", j.Seed, "ticks", j.Ticks, "frames", len(j.Frames))
	res, err := replay.Play(j)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying run %d: %v\n", id, err)
		return false
	}

	fmt.Printf("Run %d: recorded %s in %d ticks, replayed %s in %d ticks\n",
		id, flutter.FormatScore(j.Score), j.Ticks, flutter.FormatScore(res.Score), res.Ticks)
	if !res.Matches(j) {
		logger.Warn("replay diverged", "id", id, "alive", res.Alive)
		fmt.Println("MISMATCH")
		return false
	}
	fmt.Println("OK")
	return true
}
