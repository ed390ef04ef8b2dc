package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mystic-flutter/internal/config"
	"github.com/vovakirdan/mystic-flutter/internal/core"
	"github.com/vovakirdan/mystic-flutter/internal/games/flutter"
	"github.com/vovakirdan/mystic-flutter/internal/replay"
	"github.com/vovakirdan/mystic-flutter/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	game := flutter.NewWithConfig(config.DefaultFlutterConfig())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 31}
	m := NewModel(game, cfg, Options{Store: store})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelKeySetsInput(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.inputFrame.Has(core.ActionFlap) {
		t.Error("space should queue a flap")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !m.inputFrame.Empty() {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelLongPress(t *testing.T) {
	m := newTestModel(t, nil)
	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

	m, cmd := update(t, m, press)
	if cmd == nil {
		t.Fatal("press should arm the hold timer")
	}
	if !m.inputFrame.Has(core.ActionFlap) {
		t.Error("press should flap")
	}

	// Timer fires while still held.
	m, _ = update(t, m, HoldMsg{ID: m.holdID})
	if !m.inputFrame.Has(core.ActionSlowTime) {
		t.Error("a held press should trigger slow time")
	}
	m, _ = update(t, m, TickMsg{})

	// Released before the timer fires.
	m, _ = update(t, m, press)
	m, _ = update(t, m, release)
	m, _ = update(t, m, HoldMsg{ID: m.holdID})
	if m.inputFrame.Has(core.ActionSlowTime) {
		t.Error("released press should not trigger slow time")
	}
	m, _ = update(t, m, TickMsg{})

	// A stale timer from an earlier press is ignored.
	m, _ = update(t, m, press)
	stale := m.holdID
	m, _ = update(t, m, release)
	m, _ = update(t, m, press)
	m, _ = update(t, m, HoldMsg{ID: stale})
	if m.inputFrame.Has(core.ActionSlowTime) {
		t.Error("stale hold timer should be ignored")
	}
}

func TestModelIgnoresOtherButtons(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if cmd != nil || !m.inputFrame.Empty() {
		t.Error("right button should be ignored")
	}
}

func TestModelSavesReplayableRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	var logs bytes.Buffer
	m.logger = log.New(&logs)

	// No input: the entity falls out within a few dozen ticks.
	for i := 0; i < 120 && !m.gameState.GameOver; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if !m.gameState.GameOver {
		t.Fatal("round should have ended")
	}

	// Restart with a flap and lose a second round.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg{})
	if m.gameState.GameOver || m.gameState.Round != 2 {
		t.Fatalf("flap should start round 2, state %+v", m.gameState)
	}
	for i := 0; i < 120 && !m.gameState.GameOver; i++ {
		if i%20 == 0 {
			m, _ = update(t, m, runeKey('w'))
		}
		m, _ = update(t, m, TickMsg{})
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("saved %d runs, want 2", len(runs))
	}

	for _, r := range runs {
		full, err := store.RunByID(r.ID)
		if err != nil {
			t.Fatalf("RunByID: %v", err)
		}
		j, err := replay.Decode(full.Journal)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		res, err := replay.Play(j)
		if err != nil {
			t.Fatalf("Play: %v", err)
		}
		if !res.Matches(j) {
			t.Errorf("run %d: replay %+v does not match journal (ticks %d, score %v)", r.ID, res, j.Ticks, j.Score)
		}
	}

	if n := strings.Count(logs.String(), "round saved"); n != 2 {
		t.Errorf("logged %d saves, want 2:\n%s", n, logs.String())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	g := m.game.(*flutter.Game)
	if w, h := g.WorldSize(); w != 1200 || h != 720 {
		t.Errorf("world = %dx%d, want 1200x720", w, h)
	}

	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 31 {
		t.Errorf("view has %d lines, want 31", lines)
	}
}
