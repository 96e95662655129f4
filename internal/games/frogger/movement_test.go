package frogger

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

func TestAdvanceWrapsNonFrogBodies(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		wantX float64
	}{
		{"moves right", 10, 1, 11},
		{"moves left", 10, -1, 9},
		{"right edge wraps to zero", 599, 1, 0},
		{"left edge wraps to far side", 0, -1, 599},
		{"large step wraps", 590, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := body("car-1-0", KindCar, tt.x, 300, 50, tt.vx)
			got := Advance(b, 600)
			if got.Pos.X != tt.wantX || got.Pos.Y != 300 {
				t.Errorf("Advance() pos = %v, want (%v, 300)", got.Pos, tt.wantX)
			}
			if got.Vel != b.Vel {
				t.Errorf("Advance() changed velocity to %v", got.Vel)
			}
		})
	}
}

func TestAdvanceClampsFrog(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec
		vel  core.Vec
		want core.Vec
	}{
		{"hop up", core.NewVec(250, 550), core.NewVec(0, -50), core.NewVec(250, 500)},
		{"left wall", core.NewVec(0, 550), core.NewVec(-50, 0), core.NewVec(0, 550)},
		{"right wall", core.NewVec(550, 550), core.NewVec(50, 0), core.NewVec(550, 550)},
		{"bottom", core.NewVec(250, 550), core.NewVec(0, 50), core.NewVec(250, 550)},
		{"top", core.NewVec(250, 0), core.NewVec(0, -50), core.NewVec(250, 0)},
		{"partial clamp", core.NewVec(530, 550), core.NewVec(50, 0), core.NewVec(550, 550)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frog := Body{ID: frogID, Kind: KindFrog, Pos: tt.pos, Width: 50, Height: 50, Vel: tt.vel}
			got := Advance(frog, 600)
			if got.Pos != tt.want {
				t.Errorf("Advance() pos = %v, want %v", got.Pos, tt.want)
			}
			if !got.Vel.IsZero() {
				t.Errorf("frog velocity should reset after a tick, got %v", got.Vel)
			}
		})
	}
}

func TestTorusWrapRange(t *testing.T) {
	for _, v := range []float64{-1250, -600, -1, 0, 1, 599, 600, 601, 1850} {
		p := TorusWrap(core.NewVec(v, v), 600)
		if p.X < 0 || p.X >= 600 || p.Y < 0 || p.Y >= 600 {
			t.Errorf("TorusWrap(%v) = %v, outside [0, 600)", v, p)
		}
	}
}

func TestAdvanceLanesAllocatesFresh(t *testing.T) {
	lanes := []Lane{{body("wood-1-0", KindWood, 0, 100, 60, 1)}}
	moved := advanceLanes(lanes, 600)

	if lanes[0][0].Pos.X != 0 {
		t.Errorf("input lane modified: x = %v", lanes[0][0].Pos.X)
	}
	if moved[0][0].Pos.X != 1 {
		t.Errorf("moved lane x = %v, want 1", moved[0][0].Pos.X)
	}
}
