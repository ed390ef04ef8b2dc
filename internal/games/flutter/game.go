// Package flutter implements Mystic Flutter: a bird falls under variable
// gravity through a stream of gap obstacles, drifting through transient
// gravity zones, with a slow-time power on a cooldown.
package flutter

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mystic-flutter/internal/config"
	"github.com/vovakirdan/mystic-flutter/internal/core"
	"github.com/vovakirdan/mystic-flutter/internal/registry"
)

// GameID is the registry identifier.
const GameID = "flutter"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// RoundInfo identifies a round well enough to replay it.
type RoundInfo struct {
	Seed   int64
	Width  int
	Height int
	Config config.FlutterConfig
}

// Game adapts World to the registry.Game interface and maps terminal
// cells onto world pixels.
type Game struct {
	world     *World
	cfg       config.FlutterConfig
	fixedCfg  bool
	runtime   core.RuntimeConfig
	seeds     *rand.Rand // derives one seed per round
	roundSeed int64
	round     int
	paused    bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.FlutterConfig) *Game {
	cfg.Normalize()
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Mystic Flutter"
}

// Reset initializes the game and starts the first round.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt.Normalize()

	if !g.fixedCfg {
		cfg, err := config.LoadFlutter(configPath)
		if err != nil {
			cfg = config.DefaultFlutterConfig()
		}
		config.ApplyFlutterPreset(&cfg, difficultyPreset)
		cfg.Normalize()
		g.cfg = cfg
	}

	g.seeds = rand.New(rand.NewSource(g.runtime.Seed))
	g.round = 0
	g.nextSeed()
	g.world = NewWorld(g.cfg, g.roundSeed)
	w, h := g.WorldSize()
	g.world.Reset(w, h)
}

// nextSeed draws the seed of the next round from the game's seed stream.
func (g *Game) nextSeed() {
	g.roundSeed = g.seeds.Int63()
	g.round++
	g.paused = false
}

// restart reseeds the world and lets a tap on the dead entity reset it.
func (g *Game) restart() {
	g.nextSeed()
	g.world.Reseed(g.roundSeed)
	g.world.OnPrimaryAction()
}

// WorldSize converts the terminal size into world pixels.
func (g *Game) WorldSize() (int, int) {
	return g.runtime.ScreenW * g.cfg.Render.CellWidth, g.runtime.ScreenH * g.cfg.Render.CellHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var result core.StepResult

	if !g.world.Alive() {
		if in.Has(core.ActionFlap) || in.Has(core.ActionRestart) {
			g.restart()
			g.world.step(1)
			result.RoundStarted = true
			result.Advanced = true
		} else {
			// The playfield keeps drifting behind the game-over box.
			g.world.step(1)
		}
		result.State = g.State()
		return result
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		result.State = g.State()
		return result
	}

	g.world.Apply(in)
	g.world.step(1)
	result.Advanced = true
	result.RoundEnded = !g.world.Alive()
	result.State = g.State()
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: !g.world.Alive(),
		Paused:   g.paused,
		Round:    g.round,
		Seed:     g.roundSeed,
	}
}

// Round describes the current round for journaling.
func (g *Game) Round() RoundInfo {
	w, h := g.world.Size()
	return RoundInfo{
		Seed:   g.roundSeed,
		Width:  w,
		Height: h,
		Config: g.world.Config(),
	}
}

// LongPress returns how long a press must be held to trigger slow time.
func (g *Game) LongPress() time.Duration {
	return time.Duration(g.cfg.TimeControl.LongPressMS) * time.Millisecond
}

// Snapshot returns the world snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	r := Renderer{CellW: g.cfg.Render.CellWidth, CellH: g.cfg.Render.CellHeight}
	r.Draw(dst, g.world.Snapshot(), g.paused)
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
