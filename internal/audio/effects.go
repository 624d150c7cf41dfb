package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Note frequencies in Hz.
const (
	noteA3 = 220.00
	noteE4 = 329.63
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// gains balances effects against each other before the master volume.
var gains = map[core.EventKind]float64{
	core.EventMove:      0.15,
	core.EventRotate:    0.25,
	core.EventHold:      0.3,
	core.EventLock:      0.4,
	core.EventLineClear: 0.5,
	core.EventLevelUp:   0.5,
	core.EventGameOver:  0.6,
	core.EventRestart:   0.4,
}

// Effect returns a finite streamer for ev scaled by volume in [0, 1], or nil
// when the event has no sound.
func Effect(ev core.Event, volume float64) beep.Streamer {
	gain, ok := gains[ev.Kind]
	if !ok {
		return nil
	}

	var s beep.Streamer
	switch ev.Kind {
	case core.EventMove:
		s = tone(noteA3, 25*time.Millisecond, WaveSquare)
	case core.EventRotate:
		s = tone(noteE5, 40*time.Millisecond, WaveSine)
	case core.EventHold:
		s = arpeggio(50*time.Millisecond, WaveSine, noteA4, noteE4)
	case core.EventLock:
		s = beep.Mix(
			newVolume(tone(110, 70*time.Millisecond, WaveSine), 0.8),
			newVolume(tone(0, 40*time.Millisecond, WaveNoise), 0.3),
		)
	case core.EventLineClear:
		s = lineClear(ev.Value)
	case core.EventLevelUp:
		s = arpeggio(70*time.Millisecond, WaveSquare, noteC5, noteE5, noteG5, noteC6)
	case core.EventGameOver:
		s = arpeggio(180*time.Millisecond, WaveSaw, noteA4, noteE4, noteA3)
	case core.EventRestart:
		s = beep.Mix(
			newVolume(tone(noteA4*2, 120*time.Millisecond, WaveSine), 0.7),
			newVolume(tone(noteA4*4, 120*time.Millisecond, WaveSine), 0.3),
		)
	}
	return newVolume(s, gain*clampVolume(volume))
}

// lineClear climbs one note per cleared row.
func lineClear(rows int) beep.Streamer {
	scale := []float64{noteC5, noteE5, noteG5, noteC6}
	rows = max(1, min(rows, len(scale)))
	return arpeggio(60*time.Millisecond, WaveSquare, scale[:rows]...)
}

func clampVolume(v float64) float64 {
	return max(0, min(v, 1))
}
