// Package registry maps game IDs to factories. Games register from init(),
// so the CLI and the terminal host find them without importing them by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mystic-flutter/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the host drives once per tick. Implementations are pure
// simulation: the host owns input mapping, timing and terminal output.
type Game interface {
	// ID is the registry key, also stored with every journaled run.
	ID() string
	Title() string

	// Reset starts over on the screen size and seed in cfg.
	Reset(cfg core.RuntimeConfig)
	// Step advances one fixed tick with the input gathered since the last one.
	Step(in core.InputFrame) core.StepResult
	// Render draws the current frame into dst.
	Render(dst *core.Screen)
	State() core.GameState
}

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

// Register adds a factory under id. It panics on a duplicate id, which
// can only happen through a programming error in an init().
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(games))
	for id, e := range games {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
