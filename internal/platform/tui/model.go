package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mystic-flutter/internal/core"
	"github.com/vovakirdan/mystic-flutter/internal/games/flutter"
	"github.com/vovakirdan/mystic-flutter/internal/registry"
	"github.com/vovakirdan/mystic-flutter/internal/replay"
	"github.com/vovakirdan/mystic-flutter/internal/storage"
)

// defaultLongPress applies when the game does not report its own.
const defaultLongPress = 500 * time.Millisecond

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// roundGame is implemented by games whose rounds can be journaled.
type roundGame interface {
	Round() flutter.RoundInfo
}

// longPresser is implemented by games with a tunable long-press duration.
type longPresser interface {
	LongPress() time.Duration
}

// Options carries the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store // nil disables the run journal
	Logger *log.Logger    // nil discards log output
}

// Model is the Bubble Tea model that hosts a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	recorder   *replay.Recorder
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	holding    bool // mouse button is down
	holdID     int  // increments per press so stale HoldMsgs are ignored
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg = cfg.Normalize()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	if _, ok := game.(roundGame); ok {
		m.recorder = replay.NewRecorder(game.ID())
	}
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.beginRound()
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"cols", m.config.ScreenW, "rows", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case HoldMsg:
		if m.holding && msg.ID == m.holdID {
			m.holding = false
			m.inputFrame.Set(core.ActionSlowTime)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		if m.recorder != nil && m.recorder.Active() {
			m.logger.Debug("unfinished round discarded", "ticks", m.recorder.Ticks())
		}
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse maps a left press to a flap and arms the long-press timer.
// Release disarms it; if the timer fires first, slow time triggers.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.inputFrame.Set(core.ActionFlap)
		m.holding = true
		m.holdID++
		return m, holdCmd(m.holdID, m.longPress())

	case tea.MouseActionRelease:
		m.holding = false
	}
	return m, nil
}

// longPress returns the hold duration that triggers slow time.
func (m Model) longPress() time.Duration {
	if lp, ok := m.game.(longPresser); ok {
		if d := lp.LongPress(); d > 0 {
			return d
		}
	}
	return defaultLongPress
}

// handleResize restarts the round on the new playfield. The world size is
// part of a round's identity, so the unfinished round is not journaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.beginRound()
	m.logger.Debug("resized", "cols", m.config.ScreenW, "rows", m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame
	result := m.game.Step(in)
	m.gameState = result.State
	m.record(in, result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// beginRound starts journaling the game's current round.
func (m *Model) beginRound() {
	if m.recorder == nil {
		return
	}
	m.recorder.Begin(m.game.(roundGame).Round())
}

// record feeds the tick to the recorder and saves the journal when a round ends.
func (m *Model) record(in core.InputFrame, result core.StepResult) {
	if m.recorder == nil {
		return
	}

	switch {
	case result.RoundStarted:
		m.beginRound()
		// The restart tick advances the fresh world without input.
		m.recorder.Record(core.InputFrame{})
		m.logger.Debug("round started", "round", result.State.Round, "seed", result.State.Seed)
	case result.Advanced:
		m.recorder.Record(in)
	}

	if result.RoundEnded && m.recorder.Active() {
		m.saveRun(m.recorder.Finish(result.State.Score))
	}
}

// saveRun stores a finished round. Failures are logged; play continues.
func (m *Model) saveRun(j replay.Journal) {
	score := flutter.FormatScore(j.Score)
	if m.store == nil {
		m.logger.Info("round over", "score", score, "ticks", j.Ticks)
		return
	}

	id, err := replay.Save(m.store, j)
	if err != nil {
		m.logger.Error("cannot save run", "error", err)
		return
	}
	m.logger.Info("round saved", "id", id, "score", score, "ticks", j.Ticks)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot locate home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".mysticflutter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return renderFrame(m.screen, m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press and release events for long-press detection
	)

	_, err := p.Run()
	return err
}
