package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Band is a half-open vertical range [Min, Max) of frog y positions.
type Band struct {
	Min, Max float64
}

// Contains reports whether y lies in the band.
func (b Band) Contains(y float64) bool {
	return y >= b.Min && y < b.Max
}

// Rules are the fixed parameters the reducer consults on every step.
type Rules struct {
	Canvas        float64
	Start         core.Vec // Frog spawn point
	Jump          float64  // Hop length
	DoorBand      Band
	RiverBand     Band
	TrafficBand   Band
	DoorReward    int
	AllDoorsBonus int
}

// RulesFromConfig extracts the rules from a layout.
func RulesFromConfig(cfg config.FroggerConfig) Rules {
	band := func(b config.BandConfig) Band { return Band{Min: b.Min, Max: b.Max} }
	return Rules{
		Canvas:        cfg.Canvas.Size,
		Start:         core.NewVec(cfg.Frog.StartX, cfg.Frog.StartY),
		Jump:          cfg.Frog.Jump,
		DoorBand:      band(cfg.Bands.Door),
		RiverBand:     band(cfg.Bands.River),
		TrafficBand:   band(cfg.Bands.Traffic),
		DoorReward:    cfg.Rewards.Door,
		AllDoorsBonus: cfg.Rewards.AllDoors,
	}
}

// InDoorBand reports whether the frog is on the goal row.
func (r Rules) InDoorBand(frog Body) bool {
	return r.DoorBand.Contains(frog.Pos.Y)
}

// InRiverBand reports whether the frog is over the water.
func (r Rules) InRiverBand(frog Body) bool {
	return r.RiverBand.Contains(frog.Pos.Y)
}

// InTrafficBand reports whether the frog is on the road.
func (r Rules) InTrafficBand(frog Body) bool {
	return r.TrafficBand.Contains(frog.Pos.Y)
}
