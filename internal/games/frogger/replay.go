package frogger

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

const (
	// ReplayVersion is the recording format written by EncodeReplay.
	ReplayVersion = 1

	// MaxReplayEvents bounds how many events DecodeReplay expands a
	// recording into, runs included. At 60 ticks per second this is
	// close to five hours of play.
	MaxReplayEvents = 1 << 20
)

// ErrBadReplay is wrapped by every DecodeReplay failure.
var ErrBadReplay = errors.New("bad replay")

// replayDoc is the YAML shape of a recording. Consecutive ticks whose
// counters increase by one are stored as a single run.
type replayDoc struct {
	Version int           `yaml:"version"`
	Game    string        `yaml:"game"`
	Layout  string        `yaml:"layout"`
	Events  []replayEvent `yaml:"events"`
}

type replayEvent struct {
	Tick *int      `yaml:"tick,omitempty"`
	Run  *tickRun  `yaml:"run,omitempty"`
	Jump *core.Vec `yaml:"jump,omitempty,flow"`
}

type tickRun struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// LayoutFingerprint identifies a layout so a recording is only replayed
// against the layout it was played on.
func LayoutFingerprint(layout config.FroggerConfig) (string, error) {
	data, err := yaml.Marshal(layout)
	if err != nil {
		return "", fmt.Errorf("frogger: fingerprint layout: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8]), nil
}

// EncodeReplay serialises an event sequence played on layout to YAML.
func EncodeReplay(layout config.FroggerConfig, events []Event) ([]byte, error) {
	fp, err := LayoutFingerprint(layout)
	if err != nil {
		return nil, err
	}
	doc := replayDoc{Version: ReplayVersion, Game: gameID, Layout: fp}

	for i := 0; i < len(events); i++ {
		switch ev := events[i].(type) {
		case Jump:
			dir := ev.Dir
			doc.Events = append(doc.Events, replayEvent{Jump: &dir})
		case Tick:
			// Extend a run while counters stay consecutive
			j := i
			for j+1 < len(events) {
				next, ok := events[j+1].(Tick)
				if !ok || next.Elapsed != events[j].(Tick).Elapsed+1 {
					break
				}
				j++
			}
			if j == i {
				elapsed := ev.Elapsed
				doc.Events = append(doc.Events, replayEvent{Tick: &elapsed})
			} else {
				last := events[j].(Tick).Elapsed
				doc.Events = append(doc.Events, replayEvent{Run: &tickRun{From: ev.Elapsed, To: last}})
			}
			i = j
		default:
			return nil, fmt.Errorf("frogger: cannot encode event %T", ev)
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("frogger: encode replay: %w", err)
	}
	return data, nil
}

// DecodeReplay parses a recording produced by EncodeReplay. The recording
// must have been made on layout and its tick counters must strictly
// increase from 1.
func DecodeReplay(layout config.FroggerConfig, data []byte) ([]Event, error) {
	var doc replayDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("frogger: decode replay: %w: %w", ErrBadReplay, err)
	}
	if doc.Version != ReplayVersion {
		return nil, fmt.Errorf("frogger: replay version %d unsupported: %w", doc.Version, ErrBadReplay)
	}
	if doc.Game != gameID {
		return nil, fmt.Errorf("frogger: replay is for game %q: %w", doc.Game, ErrBadReplay)
	}
	fp, err := LayoutFingerprint(layout)
	if err != nil {
		return nil, err
	}
	if doc.Layout != fp {
		return nil, fmt.Errorf("frogger: replay layout %q does not match %q: %w", doc.Layout, fp, ErrBadReplay)
	}

	var events []Event
	last := 0 // Last tick counter; counters start at 1
	for i, re := range doc.Events {
		set := 0
		if re.Tick != nil {
			set++
		}
		if re.Run != nil {
			set++
		}
		if re.Jump != nil {
			set++
		}
		if set != 1 {
			return nil, fmt.Errorf("frogger: replay event %d must set exactly one of tick, run, jump: %w", i, ErrBadReplay)
		}

		switch {
		case re.Tick != nil:
			if *re.Tick <= last {
				return nil, fmt.Errorf("frogger: replay event %d has tick %d after %d: %w", i, *re.Tick, last, ErrBadReplay)
			}
			if len(events) >= MaxReplayEvents {
				return nil, fmt.Errorf("frogger: replay longer than %d events: %w", MaxReplayEvents, ErrBadReplay)
			}
			last = *re.Tick
			events = append(events, Tick{Elapsed: last})
		case re.Run != nil:
			from, to := re.Run.From, re.Run.To
			if from <= last || from > to || to == math.MaxInt {
				return nil, fmt.Errorf("frogger: replay event %d has run %d..%d after %d: %w", i, from, to, last, ErrBadReplay)
			}
			// from > last >= 0, so the length cannot overflow
			if to-from+1 > MaxReplayEvents-len(events) {
				return nil, fmt.Errorf("frogger: replay longer than %d events: %w", MaxReplayEvents, ErrBadReplay)
			}
			for t := from; t <= to; t++ {
				events = append(events, Tick{Elapsed: t})
			}
			last = to
		case re.Jump != nil:
			if len(events) >= MaxReplayEvents {
				return nil, fmt.Errorf("frogger: replay longer than %d events: %w", MaxReplayEvents, ErrBadReplay)
			}
			events = append(events, Jump{Dir: *re.Jump})
		}
	}
	return events, nil
}
