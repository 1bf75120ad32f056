package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// drain streams s to the end and returns the samples produced.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLengthAndDecay(t *testing.T) {
	d := 20 * time.Millisecond
	samples := drain(NewTone(440, 220, d, WaveSquare))

	if len(samples) != SampleRate.N(d) {
		t.Fatalf("got %d samples, want %d", len(samples), SampleRate.N(d))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d = %v", i, s)
		}
	}

	first, last := samples[0][0], samples[len(samples)-1][0]
	if abs(last) >= abs(first) {
		t.Errorf("tone does not decay: first %f, last %f", first, last)
	}
}

func TestNoiseIsDeterministic(t *testing.T) {
	a := drain(NewTone(0, 0, 5*time.Millisecond, WaveNoise))
	b := drain(NewTone(0, 0, 5*time.Millisecond, WaveNoise))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}

func TestEffect(t *testing.T) {
	if Effect(core.SoundFire, 1) == nil || Effect(core.SoundExplosion, 1) == nil {
		t.Fatal("known sounds must have effects")
	}
	if Effect(core.Sound(99), 1) != nil {
		t.Error("unknown sound should have no effect")
	}
}

func TestBeeperThrottles(t *testing.T) {
	played := 0
	b := NewBeeper(func(beep.Streamer) { played++ }, 1)

	for range 50 {
		b.Play(core.SoundFire)
	}
	if played == 0 || played > defaultBurst+1 {
		t.Errorf("played %d effects in a burst, want 1..%d", played, defaultBurst+1)
	}
}

func TestBeeperClosed(t *testing.T) {
	played := 0
	b := NewBeeper(func(beep.Streamer) { played++ }, 1)
	b.Close()
	b.Close()

	b.Play(core.SoundExplosion)
	if played != 0 {
		t.Error("closed beeper played a sound")
	}
}

func TestBeeperIsSounder(t *testing.T) {
	var _ core.Sounder = NewBeeper(func(beep.Streamer) {}, 1)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
