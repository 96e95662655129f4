package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := ParseFrogger(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseFrogger(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFroggerConfig()) {
		t.Errorf("embedded YAML and DefaultFroggerConfig() differ:\n%+v\n%+v", cfg, DefaultFroggerConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultFroggerConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestValidateRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *FroggerConfig)
	}{
		{"zero canvas", func(c *FroggerConfig) { c.Canvas.Size = 0 }},
		{"no river lanes", func(c *FroggerConfig) { c.River = nil }},
		{"no traffic lanes", func(c *FroggerConfig) { c.Traffic = nil }},
		{"no door lanes", func(c *FroggerConfig) { c.Doors = nil }},
		{"zero count", func(c *FroggerConfig) { c.Traffic[0].Count = 0 }},
		{"zero width", func(c *FroggerConfig) { c.River[1].Width = 0 }},
		{"wrong kind in river", func(c *FroggerConfig) { c.River[0].Kind = "car" }},
		{"closed first door lane", func(c *FroggerConfig) { c.Doors[0].Kind = "doorClosed" }},
		{"duplicate lane id", func(c *FroggerConfig) { c.Traffic[1].ID = c.Traffic[0].ID }},
		{"bad direction", func(c *FroggerConfig) { c.Traffic[0].Direction = "up" }},
		{"negative speed", func(c *FroggerConfig) { c.Traffic[0].Speed = -1 }},
		{"frog outside canvas", func(c *FroggerConfig) { c.Frog.StartY = 560 }},
		{"zero jump", func(c *FroggerConfig) { c.Frog.Jump = 0 }},
		{"empty band", func(c *FroggerConfig) { c.Bands.River.Max = c.Bands.River.Min }},
		{"overlapping bands", func(c *FroggerConfig) { c.Bands.Traffic.Min = 200 }},
		{"negative lives", func(c *FroggerConfig) { c.Lives.Extra = -1 }},
		{"negative reward", func(c *FroggerConfig) { c.Rewards.Door = -5 }},
		{"zero cell size", func(c *FroggerConfig) { c.Render.CellWidth = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFroggerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() accepted an invalid layout")
			}
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("error %v does not wrap ErrInvalidLayout", err)
			}
		})
	}
}

func TestLaneVelocity(t *testing.T) {
	right := LaneConfig{Speed: 2, Direction: DirectionRight}
	left := LaneConfig{Speed: 2, Direction: DirectionLeft}
	unset := LaneConfig{Speed: 2}

	if right.Velocity() != 2 || left.Velocity() != -2 || unset.Velocity() != 2 {
		t.Errorf("Velocity() = %v / %v / %v, expected 2 / -2 / 2",
			right.Velocity(), left.Velocity(), unset.Velocity())
	}
}

func TestLoadFroggerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frogger.yaml")

	custom := DefaultFroggerConfig()
	custom.Lives.Extra = 2
	data, err := yaml.Marshal(custom)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrogger(path)
	if err != nil {
		t.Fatalf("LoadFrogger() failed: %v", err)
	}
	if cfg.Lives.Extra != 2 {
		t.Errorf("Lives.Extra = %d, expected 2", cfg.Lives.Extra)
	}
}

func TestLoadFroggerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFrogger(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("canvas: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrogger(broken); err == nil {
		t.Error("expected parse error")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("canvas:\n  size: 600\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFrogger(empty)
	if !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("expected ErrInvalidLayout for a layout without lanes, got %v", err)
	}
}
