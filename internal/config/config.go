// Package config provides YAML-based layout configuration for the frogger
// playfield: canvas size, frog placement, bands, lanes and rewards.
package config

// FroggerConfig contains every fixed layout parameter of a game.
// It is read once at startup and never changed by the simulation.
type FroggerConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Frog     FrogConfig     `yaml:"frog"`
	Rewards  RewardsConfig  `yaml:"rewards"`
	Lives    LivesConfig    `yaml:"lives"`
	Progress ProgressConfig `yaml:"progress"`
	Bands    BandsConfig    `yaml:"bands"`
	River    []LaneConfig   `yaml:"river"`
	Traffic  []LaneConfig   `yaml:"traffic"`
	Doors    []LaneConfig   `yaml:"doors"`
	Render   RenderConfig   `yaml:"render"`
}

// CanvasConfig defines the square playfield in canvas units.
type CanvasConfig struct {
	Size float64 `yaml:"size"`
}

// FrogConfig defines the player body and its hop size.
type FrogConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Jump   float64 `yaml:"jump"` // Displacement of one hop
}

// RewardsConfig defines score increments.
type RewardsConfig struct {
	Door     int `yaml:"door"`      // Per filled goal slot
	AllDoors int `yaml:"all_doors"` // Bonus when the last open slot is filled
}

// LivesConfig defines the lives a game starts with.
type LivesConfig struct {
	Extra int `yaml:"extra"`
}

// ProgressConfig holds progression counters carried through the state.
// The current rules never change them.
type ProgressConfig struct {
	Rounds       int     `yaml:"rounds"`
	Stars        int     `yaml:"stars"`
	InitialSpeed float64 `yaml:"initial_speed"`
}

// BandConfig is a half-open vertical range [Min, Max) of frog y positions.
type BandConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// BandsConfig groups the three classified vertical bands.
type BandsConfig struct {
	Door    BandConfig `yaml:"door"`
	River   BandConfig `yaml:"river"`
	Traffic BandConfig `yaml:"traffic"`
}

// LaneConfig describes one row of evenly spaced bodies.
// Body i of the lane starts at x = Offset + i*(canvas/Count).
type LaneConfig struct {
	ID        int     `yaml:"id"`
	Kind      string  `yaml:"kind"`
	Y         float64 `yaml:"y"`
	Count     int     `yaml:"count"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	Direction string  `yaml:"direction"` // "right" or "left"
	Offset    float64 `yaml:"offset"`
}

// Direction values for LaneConfig.Direction.
const (
	DirectionRight = "right"
	DirectionLeft  = "left"
)

// RenderConfig maps canvas units to terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // Canvas units per column
	CellHeight float64 `yaml:"cell_height"` // Canvas units per row
}

// Velocity returns the signed per-tick horizontal speed of the lane.
func (l LaneConfig) Velocity() float64 {
	if l.Direction == DirectionLeft {
		return -l.Speed
	}
	return l.Speed
}
