// Package registry maps game ids to factories. Games register themselves
// from init(), so the command layer and the SSH server can start a game by
// id without importing its package directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Game is what the platform drives: one fixed tick per Step, rendering into
// a cell buffer. Implementations hold pure logic and never touch Bubble Tea.
type Game interface {
	// ID returns the identifier used on the command line and in score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a fresh run. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's actions in arrival order, then advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, game instance.
type Factory func() Game

// Registry is a concurrency-safe set of factories keyed by game id.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	titles    map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		titles:    make(map[string]string),
	}
}

// Register adds a factory. It panics on a duplicate id, since that can
// only be a programming error in some init().
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	r.factories[id] = f
	r.titles[id] = f().Title()
}

// List returns every registered game sorted by id.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.factories))
	for id := range r.factories {
		result = append(result, GameInfo{ID: id, Title: r.titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[id]
	return ok
}

var std = New()

// Register adds a factory to the process-wide registry.
func Register(id string, f Factory) { std.Register(id, f) }

// List returns the games in the process-wide registry.
func List() []GameInfo { return std.List() }

// Create instantiates a game from the process-wide registry.
func Create(id string) (Game, error) { return std.Create(id) }

// Exists reports whether id is in the process-wide registry.
func Exists(id string) bool { return std.Exists(id) }
