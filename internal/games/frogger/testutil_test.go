package frogger

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(config.DefaultFroggerConfig())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

// stateWithFrog returns the initial state with the frog moved to (x, y)
// and the river and traffic sections replaced.
func stateWithFrog(e *Engine, x, y float64, river, traffic []Lane) State {
	s := e.Initial()
	s.Frog.Pos = core.NewVec(x, y)
	s.RiverSec = river
	s.TrafficSec = traffic
	return s
}

func body(id string, kind Kind, x, y, w, vx float64) Body {
	return Body{
		ID:     id,
		Kind:   kind,
		Pos:    core.NewVec(x, y),
		Width:  w,
		Height: 50,
		Vel:    core.NewVec(vx, 0),
	}
}

func testConfig() config.FroggerConfig {
	return config.DefaultFroggerConfig()
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewWithConfig(testConfig())
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}
	g.Reset(core.DefaultConfig())
	return g
}
