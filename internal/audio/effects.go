// Package audio plays the shot and explosion effects through the system
// speaker. Effects are synthesized, so no sound files ship with the game.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// SampleRate is the output rate for every effect.
const SampleRate = beep.SampleRate(44100)

// Effect lengths.
const (
	fireDuration      = 70 * time.Millisecond
	explosionDuration = 350 * time.Millisecond
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveNoise
)

// decayTone is a fixed-length oscillator whose amplitude falls linearly to
// zero. Frequency slides from start to end over the duration.
type decayTone struct {
	start, end float64
	wave       Wave
	rng        *rand.Rand
	phase      float64
	pos, total int
}

// NewTone returns a streamer of the given length and wave. Noise ignores
// the frequencies.
func NewTone(start, end float64, d time.Duration, wave Wave) beep.Streamer {
	return &decayTone{
		start: start,
		end:   end,
		wave:  wave,
		rng:   rand.New(rand.NewSource(1)),
		total: SampleRate.N(d),
	}
}

func (t *decayTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.total)

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
			freq := t.start + (t.end-t.start)*progress
			t.phase += freq / float64(SampleRate)
			t.phase -= math.Floor(t.phase)
		case WaveNoise:
			val = t.rng.Float64()*2 - 1
		}

		val *= 1 - progress
		samples[i][0] = val
		samples[i][1] = val
		t.pos++
	}
	return len(samples), true
}

func (t *decayTone) Err() error { return nil }

// withVolume scales s by vol in (0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect builds the streamer for a game sound, or nil for unknown sounds.
func Effect(s core.Sound, volume float64) beep.Streamer {
	switch s {
	case core.SoundFire:
		return withVolume(NewTone(1400, 500, fireDuration, WaveSquare), volume*0.4)
	case core.SoundExplosion:
		return withVolume(NewTone(0, 0, explosionDuration, WaveNoise), volume)
	default:
		return nil
	}
}
