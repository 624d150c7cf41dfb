package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/blockfall/internal/core"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	tests := []struct {
		wave WaveType
	}{
		{WaveSine},
		{WaveSquare},
		{WaveSaw},
		{WaveNoise},
	}
	for _, tc := range tests {
		osc := NewOscillator(440, 10*time.Millisecond, tc.wave, SampleRate)
		n, peak := drain(t, osc)
		if n != SampleRate.N(10*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, expected %d", tc.wave, n, SampleRate.N(10*time.Millisecond))
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", tc.wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: Err() = %v", tc.wave, osc.Err())
		}
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 5*time.Millisecond, WaveSquare, SampleRate)
	buf := make([][2]float64, 100)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1.0 && v != -1.0 {
			t.Fatalf("sample %d = %f, expected +-1", i, v)
		}
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	d := 20 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, SampleRate) // constant +1
	env := NewEnvelope(osc, d, 5*time.Millisecond, 5*time.Millisecond, SampleRate)

	buf := make([][2]float64, SampleRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, expected %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1.0 {
		t.Errorf("sustain sample = %f, expected 1", mid)
	}
	if last := buf[n-1][0]; last >= 0.01 {
		t.Errorf("last sample = %f, expected near 0", last)
	}
}

func TestEffectForEveryEvent(t *testing.T) {
	kinds := []core.EventKind{
		core.EventMove,
		core.EventRotate,
		core.EventHold,
		core.EventLock,
		core.EventLineClear,
		core.EventLevelUp,
		core.EventGameOver,
		core.EventRestart,
	}
	for _, k := range kinds {
		s := Effect(core.Event{Kind: k, Value: 2}, 1)
		if s == nil {
			t.Errorf("Effect(%v) = nil", k)
			continue
		}
		n, peak := drain(t, s)
		if n == 0 || n > SampleRate.N(time.Second) {
			t.Errorf("Effect(%v) length = %d samples", k, n)
		}
		if peak == 0 || peak > 1.0 {
			t.Errorf("Effect(%v) peak = %f", k, peak)
		}
	}

	if Effect(core.Event{Kind: core.EventKind(99)}, 1) != nil {
		t.Error("unknown event should have no sound")
	}
}

func TestLineClearLengthGrowsWithRows(t *testing.T) {
	single, _ := drain(t, Effect(core.Event{Kind: core.EventLineClear, Value: 1}, 1))
	tetris, _ := drain(t, Effect(core.Event{Kind: core.EventLineClear, Value: 4}, 1))
	if tetris <= single {
		t.Errorf("4 rows = %d samples, 1 row = %d; expected longer", tetris, single)
	}
}

func TestEffectSilentAtZeroVolume(t *testing.T) {
	_, peak := drain(t, Effect(core.Event{Kind: core.EventLock}, 0))
	if peak != 0 {
		t.Errorf("peak = %f, expected silence", peak)
	}
}

func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager(0.5)
	if sm.Enabled() {
		t.Error("manager should start disabled")
	}
	// Must not panic.
	sm.Play(core.Event{Kind: core.EventLock})
	sm.PlayEvents([]core.Event{{Kind: core.EventGameOver}})
	sm.Cleanup()
}

func TestSoundManagerPlayEvents(t *testing.T) {
	sm := NewSoundManager(2)
	if sm.Volume() != 1 {
		t.Errorf("Volume() = %f, expected clamp to 1", sm.Volume())
	}

	var played int
	sm.initialized = true
	sm.play = func(beep.Streamer) { played++ }

	sm.PlayEvents([]core.Event{
		{Kind: core.EventMove},
		{Kind: core.EventMove},
		{Kind: core.EventRotate},
		{Kind: core.EventLock},
		{Kind: core.EventKind(99)},
	})
	if played != 3 {
		t.Errorf("played %d sounds, expected 3", played)
	}

	sm.SetVolume(0)
	sm.Play(core.Event{Kind: core.EventLock})
	if played != 3 {
		t.Error("zero volume should not queue sounds")
	}
}
