package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// State is a complete simulation snapshot. Reducer steps never modify a
// State they are given; they return a new one that shares no mutable
// storage with the old.
type State struct {
	Time         int // Elapsed counter of the last applied tick
	Frog         Body
	Score        int
	ExtraLife    int
	Rounds       int
	NumOfStars   int
	InitialSpeed float64
	RiverSec     []Lane // Floating platforms
	TrafficSec   []Lane // Vehicles
	DoorSec      []Lane // Goal slots (lane 0) and walls
	DoorSuccess  []Body // Flags for filled slots, in fill order
	GameEnd      bool
}

// NewState builds the initial state from a layout. The layout is assumed
// to be valid; NewEngine checks that before anything is built.
func NewState(cfg config.FroggerConfig) State {
	size := cfg.Canvas.Size
	return State{
		Time:         0,
		Frog:         newFrog(cfg.Frog),
		Score:        0,
		ExtraLife:    cfg.Lives.Extra,
		Rounds:       cfg.Progress.Rounds,
		NumOfStars:   cfg.Progress.Stars,
		InitialSpeed: cfg.Progress.InitialSpeed,
		RiverSec:     buildLanes(cfg.River, size),
		TrafficSec:   buildLanes(cfg.Traffic, size),
		DoorSec:      buildLanes(cfg.Doors, size),
		DoorSuccess:  []Body{},
		GameEnd:      false,
	}
}

func newFrog(f config.FrogConfig) Body {
	return Body{
		ID:     frogID,
		Kind:   KindFrog,
		Pos:    core.NewVec(f.StartX, f.StartY),
		Width:  f.Width,
		Height: f.Height,
	}
}

func buildLanes(lanes []config.LaneConfig, size float64) []Lane {
	out := make([]Lane, len(lanes))
	for i, lc := range lanes {
		out[i] = NewLane(lc, size, 0)
	}
	return out
}

// Slots returns the goal slots: the first door lane.
func (s State) Slots() Lane {
	if len(s.DoorSec) == 0 {
		return nil
	}
	return s.DoorSec[0]
}

// Filled reports whether the goal slot with the given id already has a flag.
func (s State) Filled(slotID string) bool {
	flagID := "flag-" + slotID
	for _, f := range s.DoorSuccess {
		if f.ID == flagID {
			return true
		}
	}
	return false
}

// Bodies returns every body in draw order: doors, flags, river, traffic, frog.
func (s State) Bodies() []Body {
	var out []Body
	for _, lane := range s.DoorSec {
		out = append(out, lane...)
	}
	out = append(out, s.DoorSuccess...)
	for _, lane := range s.RiverSec {
		out = append(out, lane...)
	}
	for _, lane := range s.TrafficSec {
		out = append(out, lane...)
	}
	return append(out, s.Frog)
}
