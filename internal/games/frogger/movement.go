package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Advance moves a body by its velocity for one tick.
//
// The frog is clamped to the canvas and stops after every hop: it moves
// exactly once per directional input. Every other body wraps around the
// canvas edges as on a torus and keeps its velocity forever.
func Advance(b Body, canvas float64) Body {
	next := b.Pos.Add(b.Vel)

	if b.Kind == KindFrog {
		b.Pos = core.NewVec(
			core.ClampF(next.X, 0, canvas-b.Width),
			core.ClampF(next.Y, 0, canvas-b.Height),
		)
		b.Vel = core.Zero
		return b
	}

	b.Pos = TorusWrap(next, canvas)
	return b
}

// TorusWrap maps both components of p onto [0, canvas).
func TorusWrap(p core.Vec, canvas float64) core.Vec {
	return core.NewVec(core.WrapF(p.X, canvas), core.WrapF(p.Y, canvas))
}

// advanceLanes returns freshly allocated lanes with every body advanced.
func advanceLanes(lanes []Lane, canvas float64) []Lane {
	out := make([]Lane, len(lanes))
	for i, lane := range lanes {
		moved := make(Lane, len(lane))
		for j, b := range lane {
			moved[j] = Advance(b, canvas)
		}
		out[i] = moved
	}
	return out
}
