package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the built-in layout. It mirrors
// defaults/frogger.yaml and is the fallback when the embedded copy fails to parse.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Canvas: CanvasConfig{Size: 600},
		Frog: FrogConfig{
			StartX: 250,
			StartY: 550,
			Width:  50,
			Height: 50,
			Jump:   50,
		},
		Rewards: RewardsConfig{
			Door:     50,
			AllDoors: 500,
		},
		Lives: LivesConfig{Extra: 0},
		Progress: ProgressConfig{
			Rounds:       1,
			Stars:        0,
			InitialSpeed: 1,
		},
		Bands: BandsConfig{
			Door:    BandConfig{Min: 0, Max: 50},
			River:   BandConfig{Min: 100, Max: 250},
			Traffic: BandConfig{Min: 300, Max: 450},
		},
		River: []LaneConfig{
			{ID: 201, Kind: "wood", Y: 100, Count: 3, Width: 160, Height: 50, Speed: 1, Direction: DirectionRight},
			{ID: 202, Kind: "wood", Y: 150, Count: 4, Width: 110, Height: 50, Speed: 1, Direction: DirectionLeft},
			{ID: 203, Kind: "wood", Y: 200, Count: 5, Width: 60, Height: 50, Speed: 1, Direction: DirectionRight},
		},
		Traffic: []LaneConfig{
			{ID: 301, Kind: "car", Y: 300, Count: 5, Width: 50, Height: 50, Speed: 1, Direction: DirectionLeft},
			{ID: 302, Kind: "van", Y: 350, Count: 3, Width: 100, Height: 50, Speed: 1, Direction: DirectionRight},
			{ID: 303, Kind: "car", Y: 400, Count: 4, Width: 50, Height: 50, Speed: 1, Direction: DirectionLeft},
		},
		Doors: []LaneConfig{
			{ID: 101, Kind: "doorOpen", Y: 0, Count: 3, Width: 100, Height: 50, Offset: 50},
			{ID: 102, Kind: "doorClosed", Y: 0, Count: 3, Width: 100, Height: 50, Offset: 150},
			{ID: 103, Kind: "doorClosed", Y: 0, Count: 1, Width: 50, Height: 50, Offset: 0},
		},
		Render: RenderConfig{
			CellWidth:  10,
			CellHeight: 50,
		},
	}
}

// DefaultYAML returns the embedded default layout as YAML.
func DefaultYAML() []byte {
	return defaultFroggerYAML
}
