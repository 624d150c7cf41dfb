package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/blockfall/internal/core"
)

// SoundManager plays one effect per game event. Until Initialize succeeds
// every call is a no-op, so the game runs the same without a sound device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool

	// play hands a streamer to the output; replaced in tests.
	play func(beep.Streamer)
}

// NewSoundManager creates a sound manager at the given master volume.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize opens the default output device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.play = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds reach an output.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetVolume sets the master volume, clamped to [0, 1].
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = clampVolume(v)
}

// Volume returns the master volume.
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Play queues the effect for one event.
func (sm *SoundManager) Play(ev core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume == 0 {
		return
	}
	if s := Effect(ev, sm.volume); s != nil {
		sm.play(s)
	}
}

// PlayEvents queues the effects for a tick's events in order. Only the
// first move of a tick is voiced so held keys don't stack clicks.
func (sm *SoundManager) PlayEvents(events []core.Event) {
	moved := false
	for _, ev := range events {
		if ev.Kind == core.EventMove {
			if moved {
				continue
			}
			moved = true
		}
		sm.Play(ev)
	}
}

// Cleanup stops all sounds and releases the device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.play = nil
	sm.initialized = false
}
