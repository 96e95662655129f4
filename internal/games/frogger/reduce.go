package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
)

// Engine folds events into states under a fixed layout.
// It holds no mutable state and is safe to share.
type Engine struct {
	cfg   config.FroggerConfig
	rules Rules
}

// NewEngine validates the layout and returns an engine for it.
func NewEngine(cfg config.FroggerConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, rules: RulesFromConfig(cfg)}, nil
}

// Rules returns the rules the engine applies.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Config returns the layout the engine was built from.
func (e *Engine) Config() config.FroggerConfig {
	return e.cfg
}

// Initial returns the starting state for the engine's layout.
func (e *Engine) Initial() State {
	return NewState(e.cfg)
}

// Jump returns the hop of the configured length in direction d.
func (e *Engine) Jump(d Direction) (Jump, bool) {
	return JumpTo(d, e.rules.Jump)
}

// Reduce applies one event and returns the next state.
func (e *Engine) Reduce(s State, ev Event) State {
	next, _ := e.Step(s, ev)
	return next
}

// Step is Reduce that also reports what the scoring pass decided.
// Once a state has ended every event leaves it unchanged.
func (e *Engine) Step(s State, ev Event) (State, Outcome) {
	if s.GameEnd {
		return s, Outcome{}
	}

	switch ev := ev.(type) {
	case Jump:
		s.Frog.Vel = ev.Dir
		return s, Outcome{}
	case Tick:
		return e.tick(s, ev.Elapsed)
	default:
		return s, Outcome{}
	}
}

// tick moves the frog and every river and traffic body, then scores.
// Doors never move.
func (e *Engine) tick(s State, elapsed int) (State, Outcome) {
	canvas := e.rules.Canvas

	s.Time = elapsed
	s.Frog = Advance(s.Frog, canvas)
	s.TrafficSec = advanceLanes(s.TrafficSec, canvas)
	s.RiverSec = advanceLanes(s.RiverSec, canvas)

	return e.rules.Resolve(s)
}
