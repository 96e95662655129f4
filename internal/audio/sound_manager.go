package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// DefaultSampleRate is used when a SoundManager is created with rate 0.
const DefaultSampleRate = beep.SampleRate(44100)

// SoundManager owns the speaker and mixes event cues into it.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a manager; the speaker is opened by Initialize.
func NewSoundManager(rate beep.SampleRate, volume float64) *SoundManager {
	if rate == 0 {
		rate = DefaultSampleRate
	}
	return &SoundManager{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself stays open and the
// manager stays initialized, so a later Initialize does not call
// speaker.Init a second time.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

// Play queues the cue for ev. It is a no-op before Initialize.
func (sm *SoundManager) Play(ev core.EventKind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	cue := Cue(ev, sm.rate, sm.volume)
	if cue == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
}
