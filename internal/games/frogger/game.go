// Package frogger implements a Frogger-style crossing game: the frog hops
// over a road and a river of drifting logs to reach the goal slots.
//
// The simulation is a pure fold: Engine.Reduce takes a State and an Event
// (a clock Tick or a directional Jump) and returns the next State. Game
// wraps that fold for the arcade platform.
package frogger

import (
	"errors"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

const gameID = "frogger"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the engine to the platform: it turns input frames into
// events, keeps the current state and records every applied event.
type Game struct {
	engine    *Engine
	layout    *config.FroggerConfig // Fixed layout; nil means load on Reset
	state     State
	runtime   core.RuntimeConfig
	paused    bool
	ticks     int     // Elapsed counter for the next tick
	recording []Event // Every event applied since Reset
	lastOut   Outcome
}

// New creates a game that loads its layout on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to a fixed layout.
func NewWithConfig(cfg config.FroggerConfig) (*Game, error) {
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	return &Game{engine: engine, layout: &cfg}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.layout == nil || g.engine == nil {
		cfg, err := config.LoadFrogger(configPath)
		if err != nil {
			cfg = config.DefaultFroggerConfig()
		}
		engine, err := NewEngine(cfg)
		if err != nil {
			// The built-in layout is covered by tests
			engine = &Engine{cfg: config.DefaultFroggerConfig(), rules: RulesFromConfig(config.DefaultFroggerConfig())}
		}
		g.engine = engine
	}

	g.state = g.engine.Initial()
	g.paused = false
	g.ticks = 1
	g.recording = g.recording[:0]
	g.lastOut = Outcome{}
}

// Step feeds the frame's hops to the engine in arrival order, then one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.GameEnd {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.EventKind
	for _, a := range in.Actions() {
		dir, ok := directionFor(a)
		if !ok {
			continue
		}
		jump, _ := g.engine.Jump(dir)
		g.apply(jump)
		events = append(events, core.EventJump)
	}

	out := g.apply(Tick{Elapsed: g.ticks})
	g.ticks++
	g.lastOut = out

	if out.Filled {
		events = append(events, core.EventDoorFilled)
	}
	if out.Died {
		events = append(events, core.EventDied)
	}
	if out.GameOver {
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// apply runs one event through the engine and records it.
func (g *Game) apply(ev Event) Outcome {
	next, out := g.engine.Step(g.state, ev)
	g.state = next
	g.recording = append(g.recording, ev)
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameEnd,
		Paused:   g.paused,
	}
}

// Current returns the full simulation state.
func (g *Game) Current() State {
	return g.state
}

// Ticks returns the elapsed counter of the last applied tick.
func (g *Game) Ticks() int {
	return g.state.Time
}

// Engine returns the engine the game runs on.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Recording returns a copy of every event applied since the last Reset.
func (g *Game) Recording() []Event {
	out := make([]Event, len(g.recording))
	copy(out, g.recording)
	return out
}

// ReplayYAML encodes the events applied since the last Reset.
func (g *Game) ReplayYAML() ([]byte, error) {
	if g.engine == nil {
		return nil, errors.New("frogger: no layout loaded before Reset")
	}
	return EncodeReplay(g.engine.Config(), g.recording)
}

// Register the game with the registry
func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}
