package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Kind identifies what a body is. It decides which band a body collides in
// and how the renderer draws it.
type Kind string

const (
	KindFrog       Kind = "frog"
	KindWood       Kind = "wood"
	KindCar        Kind = "car"
	KindVan        Kind = "van"
	KindDoorOpen   Kind = "doorOpen"
	KindDoorClosed Kind = "doorClosed"
	KindSkull      Kind = "skull"
	KindStar       Kind = "star"
	KindFlag       Kind = "flag"
)

// frogID is the id of the single player body.
const frogID = "frog"

// Body is one axis-aligned rectangle in the world: the frog, a vehicle,
// a log or a goal slot. Only Pos and Vel change over a body's lifetime.
type Body struct {
	ID         string   // Stable across ticks for the same entity
	Kind       Kind     // What the body is
	Pos        core.Vec // Top-left corner
	Width      float64
	Height     float64
	Vel        core.Vec // Added to Pos on every tick
	CreateTime int      // Tick the body was created at
}

// Right returns the exclusive right edge.
func (b Body) Right() float64 {
	return b.Pos.X + b.Width
}

// Lane is an ordered row of bodies moving together.
type Lane []Body

// NewLane lays out a lane from its config: Count bodies spaced evenly
// across the canvas starting at Offset, all sharing one velocity.
func NewLane(lc config.LaneConfig, canvas float64, createTime int) Lane {
	spacing := canvas / float64(lc.Count)
	vel := core.NewVec(lc.Velocity(), 0)

	lane := make(Lane, lc.Count)
	for i := range lane {
		lane[i] = Body{
			ID:         fmt.Sprintf("%s-%d-%d", lc.Kind, lc.ID, i),
			Kind:       Kind(lc.Kind),
			Pos:        core.NewVec(core.WrapF(lc.Offset+float64(i)*spacing, canvas), lc.Y),
			Width:      lc.Width,
			Height:     lc.Height,
			Vel:        vel,
			CreateTime: createTime,
		}
	}
	return lane
}

// flagFor returns the marker body recorded when a goal slot is filled.
func flagFor(slot Body) Body {
	flag := slot
	flag.ID = "flag-" + slot.ID
	flag.Kind = KindFlag
	flag.Vel = core.Zero
	return flag
}
