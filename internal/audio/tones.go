// Package audio plays short synthesized cues for game events through the
// system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// oscillator is a fixed-length periodic tone.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
}

// NewTone returns a streamer that plays freq for d and then drains.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade applies a linear release over the last part of a stream so tones
// end without a click.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func newFade(s beep.Streamer, total, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: rate.N(total), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= start && f.release > 0 {
			vol := float64(f.total-f.position) / float64(f.release)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// note is one step of a cue.
type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

// cues maps each game event to its melody.
var cues = map[core.EventKind][]note{
	core.EventJump: {
		{freq: 660, dur: 40 * time.Millisecond, wave: WaveSquare},
	},
	core.EventDoorFilled: {
		{freq: 784, dur: 80 * time.Millisecond, wave: WaveTriangle},
		{freq: 1047, dur: 120 * time.Millisecond, wave: WaveTriangle},
	},
	core.EventDied: {
		{freq: 220, dur: 120 * time.Millisecond, wave: WaveSquare},
		{freq: 165, dur: 160 * time.Millisecond, wave: WaveSquare},
	},
	core.EventGameOver: {
		{freq: 392, dur: 150 * time.Millisecond, wave: WaveSine},
		{freq: 330, dur: 150 * time.Millisecond, wave: WaveSine},
		{freq: 262, dur: 300 * time.Millisecond, wave: WaveSine},
	},
}

// Cue builds the streamer for an event, or nil for silent events.
func Cue(ev core.EventKind, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cues[ev]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		release := n.dur / 4
		parts[i] = newFade(NewTone(n.freq, n.dur, n.wave, rate), n.dur, release, rate)
	}
	return withVolume(beep.Seq(parts...), volume)
}

// CueLength returns how many samples the cue for ev lasts.
func CueLength(ev core.EventKind, rate beep.SampleRate) int {
	total := 0
	for _, n := range cues[ev] {
		total += rate.N(n.dur)
	}
	return total
}

// withVolume scales a stream linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
