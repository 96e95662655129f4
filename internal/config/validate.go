package config

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is wrapped by every error returned from Validate.
var ErrInvalidLayout = errors.New("invalid layout")

// Body kinds accepted per section.
var (
	riverKinds   = map[string]bool{"wood": true}
	trafficKinds = map[string]bool{"car": true, "van": true}
	doorKinds    = map[string]bool{"doorOpen": true, "doorClosed": true}
)

// Validate rejects layouts the simulation cannot run on.
// It reports the first problem found.
func (c FroggerConfig) Validate() error {
	size := c.Canvas.Size
	if size <= 0 {
		return invalid("canvas size must be positive, got %v", size)
	}

	f := c.Frog
	if f.Width <= 0 || f.Height <= 0 {
		return invalid("frog size must be positive, got %vx%v", f.Width, f.Height)
	}
	if f.Width > size || f.Height > size {
		return invalid("frog %vx%v does not fit canvas %v", f.Width, f.Height, size)
	}
	if f.StartX < 0 || f.StartX > size-f.Width || f.StartY < 0 || f.StartY > size-f.Height {
		return invalid("frog start (%v, %v) lies outside the canvas", f.StartX, f.StartY)
	}
	if f.Jump <= 0 {
		return invalid("frog jump must be positive, got %v", f.Jump)
	}

	if c.Rewards.Door < 0 || c.Rewards.AllDoors < 0 {
		return invalid("rewards must not be negative")
	}
	if c.Lives.Extra < 0 {
		return invalid("extra lives must not be negative, got %d", c.Lives.Extra)
	}

	bands := []struct {
		name string
		band BandConfig
	}{
		{"door", c.Bands.Door},
		{"river", c.Bands.River},
		{"traffic", c.Bands.Traffic},
	}
	for _, b := range bands {
		if b.band.Min >= b.band.Max {
			return invalid("%s band [%v, %v) is empty", b.name, b.band.Min, b.band.Max)
		}
		if b.band.Min < 0 || b.band.Max > size {
			return invalid("%s band [%v, %v) exceeds canvas", b.name, b.band.Min, b.band.Max)
		}
	}
	for i := 0; i < len(bands); i++ {
		for j := i + 1; j < len(bands); j++ {
			a, b := bands[i].band, bands[j].band
			if a.Min < b.Max && b.Min < a.Max {
				return invalid("%s and %s bands overlap", bands[i].name, bands[j].name)
			}
		}
	}

	if err := validateSection("river", c.River, riverKinds, size); err != nil {
		return err
	}
	if err := validateSection("traffic", c.Traffic, trafficKinds, size); err != nil {
		return err
	}
	if err := validateSection("doors", c.Doors, doorKinds, size); err != nil {
		return err
	}
	if c.Doors[0].Kind != "doorOpen" {
		return invalid("first door lane must hold doorOpen goal slots, got %q", c.Doors[0].Kind)
	}

	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		return invalid("render cell size must be positive")
	}
	return nil
}

func validateSection(name string, lanes []LaneConfig, kinds map[string]bool, size float64) error {
	if len(lanes) == 0 {
		return invalid("%s needs at least one lane", name)
	}
	ids := make(map[int]bool, len(lanes))
	for i, l := range lanes {
		if ids[l.ID] {
			return invalid("%s lane %d reuses id %d", name, i, l.ID)
		}
		ids[l.ID] = true

		if !kinds[l.Kind] {
			return invalid("%s lane %d has kind %q", name, i, l.Kind)
		}
		if l.Count <= 0 {
			return invalid("%s lane %d needs a positive count, got %d", name, i, l.Count)
		}
		if l.Width <= 0 || l.Height <= 0 {
			return invalid("%s lane %d needs a positive size, got %vx%v", name, i, l.Width, l.Height)
		}
		if l.Y < 0 || l.Y >= size {
			return invalid("%s lane %d row y=%v lies outside the canvas", name, i, l.Y)
		}
		if l.Speed < 0 {
			return invalid("%s lane %d speed must not be negative, use direction", name, i)
		}
		switch l.Direction {
		case "", DirectionRight, DirectionLeft:
		default:
			return invalid("%s lane %d has direction %q", name, i, l.Direction)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %s: %w", fmt.Sprintf(format, args...), ErrInvalidLayout)
}
