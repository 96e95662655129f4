package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// drain streams s to the end and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > peak {
				peak = smp[0]
			}
			if -smp[0] > peak {
				peak = -smp[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"triangle", WaveTriangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tone := NewTone(440, 100*time.Millisecond, tt.wave, rate)
			n, peak := drain(t, tone)
			if n != rate.N(100*time.Millisecond) {
				t.Errorf("tone produced %d samples, want %d", n, rate.N(100*time.Millisecond))
			}
			if peak > 1 || peak == 0 {
				t.Errorf("peak = %v, want in (0, 1]", peak)
			}
			if tone.Err() != nil {
				t.Errorf("Err() = %v", tone.Err())
			}
		})
	}
}

func TestSquareToneValues(t *testing.T) {
	tone := NewTone(220, 10*time.Millisecond, WaveSquare, beep.SampleRate(8000))
	buf := make([][2]float64, 40)
	n, _ := tone.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("sample %d = %v, want +-1", i, v)
		}
	}
}

func TestFadeEndsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 50 * time.Millisecond
	s := newFade(NewTone(440, d, WaveSquare, rate), d, d/2, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, want %d", n, len(buf))
	}
	last := buf[n-1][0]
	if last > 0.05 || last < -0.05 {
		t.Errorf("last sample = %v, want near zero", last)
	}
	if buf[0][0] != 1 {
		t.Errorf("first sample = %v, want full volume", buf[0][0])
	}
}

func TestCues(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, ev := range []core.EventKind{core.EventJump, core.EventDoorFilled, core.EventDied, core.EventGameOver} {
		t.Run(ev.String(), func(t *testing.T) {
			cue := Cue(ev, rate, 0.5)
			if cue == nil {
				t.Fatal("Cue() = nil")
			}
			n, _ := drain(t, cue)
			if n != CueLength(ev, rate) {
				t.Errorf("cue produced %d samples, want %d", n, CueLength(ev, rate))
			}
		})
	}

	if Cue(core.EventKind(0), rate, 1) != nil {
		t.Error("unknown event should be silent")
	}
}

func TestPlayBeforeInitialize(t *testing.T) {
	sm := NewSoundManager(0, 1)
	sm.Play(core.EventJump)
	sm.Cleanup()

	if sm.rate != DefaultSampleRate {
		t.Errorf("rate = %v, want default", sm.rate)
	}
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Initialize", sm.mixer.Len())
	}
}

func TestCleanupKeepsSpeakerOpen(t *testing.T) {
	sm := NewSoundManager(0, 1)
	// Stand in for an opened speaker; tests have no audio device
	sm.initialized = true

	sm.Play(core.EventDied)
	if sm.mixer.Len() != 1 {
		t.Fatalf("mixer has %d streamers, want 1", sm.mixer.Len())
	}

	sm.Cleanup()
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers after Cleanup, want 0", sm.mixer.Len())
	}
	if !sm.initialized {
		t.Fatal("Cleanup marked the speaker closed")
	}

	// Already initialized, so this must not reach speaker.Init
	if err := sm.Initialize(); err != nil {
		t.Errorf("Initialize() after Cleanup error = %v", err)
	}
	sm.Play(core.EventJump)
	if sm.mixer.Len() != 1 {
		t.Errorf("mixer has %d streamers after replaying a cue, want 1", sm.mixer.Len())
	}
}
