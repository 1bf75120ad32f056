package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// Default throttle: at most this many effects per second, with a small burst.
const (
	defaultRate  = 12
	defaultBurst = 4
)

// Beeper implements core.Sounder. Effects beyond the rate limit are dropped
// so a busy sky does not pile up audio.
type Beeper struct {
	mu      sync.Mutex
	volume  float64
	limiter *rate.Limiter
	sink    func(beep.Streamer)
	stop    func()
	closed  bool
}

// NewBeeper creates a beeper that hands every effect to sink.
func NewBeeper(sink func(beep.Streamer), volume float64) *Beeper {
	return &Beeper{
		volume:  volume,
		limiter: rate.NewLimiter(defaultRate, defaultBurst),
		sink:    sink,
	}
}

// Open initializes the speaker and returns a beeper playing through it.
func Open(volume float64) (*Beeper, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	b := NewBeeper(func(s beep.Streamer) {
		speaker.Lock()
		mixer.Add(s)
		speaker.Unlock()
	}, volume)
	b.stop = speaker.Clear
	return b, nil
}

// Play starts the effect for s unless the beeper is closed or throttled.
func (b *Beeper) Play(s core.Sound) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || !b.limiter.Allow() {
		return
	}
	if st := Effect(s, b.volume); st != nil {
		b.sink(st)
	}
}

// Close stops all playback. Later calls to Play are ignored.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	if b.stop != nil {
		b.stop()
	}
}
