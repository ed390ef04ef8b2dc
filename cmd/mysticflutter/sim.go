package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mystic-flutter/internal/core"
	"github.com/vovakirdan/mystic-flutter/internal/games/flutter"
	"github.com/vovakirdan/mystic-flutter/internal/replay"
	"github.com/vovakirdan/mystic-flutter/internal/storage"
)

var (
	flagRounds   int
	flagMaxTicks int
	flagCols     int
	flagRows     int
	flagSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headlessly",
	Long: `Fly rounds with the built-in autopilot without a terminal UI and log
each result. The playfield is sized as if on a --cols x --rows terminal.
With --save each finished round is journaled like an interactive one.

Examples:
  mysticflutter sim
  mysticflutter sim --rounds 10 --seed 7 --save
  mysticflutter sim --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRounds, "rounds", 3, "Number of rounds to fly")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 60*60*10, "Stop after this many ticks in total")
	simCmd.Flags().IntVar(&flagCols, "cols", 80, "Virtual terminal width")
	simCmd.Flags().IntVar(&flagRows, "rows", 24, "Virtual terminal height")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Journal finished rounds to --db")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(cmd *cobra.Command, args []string) {
	logger := mustLogger(os.Stderr)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *storage.Store
	if flagSave {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Error("could not open run journal", "error", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	flutter.SetConfigPath(flagConfig)
	flutter.SetDifficultyPreset(flagDifficulty)

	game := flutter.New()
	game.Reset(core.RuntimeConfig{ScreenW: flagCols, ScreenH: flagRows, TickRate: flagFPS, Seed: seed})
	w, h := game.WorldSize()
	logger.Info("simulation started", "seed", seed, "width", w, "height", h, "rounds", flagRounds)

	s := simulation{game: game, pilot: flutter.DefaultPilot(), recorder: replay.NewRecorder(game.ID()), store: store, logger: logger}
	finished := s.run(flagRounds, flagMaxTicks)

	if finished < flagRounds {
		logger.Warn("tick budget exhausted", "finished", finished, "rounds", flagRounds,
			"score", flutter.FormatScore(game.State().Score))
	}
	logger.Info("simulation done", "rounds", finished, "best", flutter.FormatScore(s.best))
}

// simulation drives a game with the autopilot the way the terminal host would.
type simulation struct {
	game     *flutter.Game
	pilot    flutter.Pilot
	recorder *replay.Recorder
	store    *storage.Store
	logger   *log.Logger
	best     float64
}

// run flies until rounds have ended or maxTicks elapse and returns the rounds finished.
func (s *simulation) run(rounds, maxTicks int) int {
	s.recorder.Begin(s.game.Round())

	finished := 0
	for tick := 0; tick < maxTicks && finished < rounds; tick++ {
		in := s.pilot.Decide(s.game.Snapshot())
		if s.game.State().GameOver {
			in.Set(core.ActionRestart)
		}

		result := s.game.Step(in)
		switch {
		case result.RoundStarted:
			s.recorder.Begin(s.game.Round())
			s.recorder.Record(core.InputFrame{})
		case result.Advanced:
			s.recorder.Record(in)
		}

		if result.RoundEnded {
			finished++
			s.finishRound(result.State)
		}
	}
	return finished
}

func (s *simulation) finishRound(state core.GameState) {
	j := s.recorder.Finish(state.Score)
	s.best = max(s.best, j.Score)
	s.logger.Info("round over", "round", state.Round, "seed", j.Seed,
		"score", flutter.FormatScore(j.Score), "ticks", j.Ticks)

	if s.store == nil {
		return
	}
	id, err := replay.Save(s.store, j)
	if err != nil {
		s.logger.Error("cannot save run", "error", err)
		return
	}
	s.logger.Debug("round saved", "id", id)
}
