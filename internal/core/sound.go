package core

// Sound identifies a short audible cue raised by game logic.
type Sound int

const (
	SoundFire      Sound = iota // Plasma gun shot
	SoundExplosion              // Garbage destroyed
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Sounder plays sounds. Implementations must not block the caller.
type Sounder interface {
	Play(s Sound)
}

// SilentSounder discards every sound.
type SilentSounder struct{}

// Play does nothing.
func (SilentSounder) Play(Sound) {}
