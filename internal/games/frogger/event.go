package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Event is one element of the merged input stream. The set is closed:
// Tick and Jump are the only implementations.
type Event interface {
	isEvent()
}

// Tick advances the simulation; Elapsed is the clock's monotonic counter.
type Tick struct {
	Elapsed int
}

// Jump sets the frog's displacement for the next tick.
type Jump struct {
	Dir core.Vec
}

func (Tick) isEvent() {}
func (Jump) isEvent() {}

// Direction names one of the four hops.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// JumpTo returns the hop in the given direction with the given length.
// Unknown directions yield a zero hop and false.
func JumpTo(d Direction, size float64) (Jump, bool) {
	switch d {
	case DirLeft:
		return Jump{Dir: core.NewVec(-size, 0)}, true
	case DirRight:
		return Jump{Dir: core.NewVec(size, 0)}, true
	case DirUp:
		return Jump{Dir: core.NewVec(0, -size)}, true
	case DirDown:
		return Jump{Dir: core.NewVec(0, size)}, true
	}
	return Jump{}, false
}

// directionFor maps a directional platform action to a hop direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	}
	return "", false
}
