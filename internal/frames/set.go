package frames

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed defaults/*.txt
var defaultFS embed.FS

// Kind classifies a frame file by its name prefix.
type Kind string

const (
	KindRocket    Kind = "rocket"
	KindGarbage   Kind = "garbage"
	KindExplosion Kind = "explosion"
	KindGameOver  Kind = "gameover"
)

// Set holds every frame the game animates, grouped by kind.
// Frames within a kind are ordered by file name.
type Set struct {
	Rocket    []Frame
	Garbage   []Frame
	Explosion []Frame
	GameOver  Frame
}

// kindOf maps a file name to its kind. Unprefixed files count as rocket
// frames so a plain directory of ship drawings works on its own.
func kindOf(name string) Kind {
	base := strings.ToLower(strings.TrimSuffix(name, path.Ext(name)))
	switch {
	case strings.HasPrefix(base, "garbage"), strings.HasPrefix(base, "trash"):
		return KindGarbage
	case strings.HasPrefix(base, "explosion"):
		return KindExplosion
	case strings.HasPrefix(base, "gameover"), strings.HasPrefix(base, "game_over"):
		return KindGameOver
	default:
		return KindRocket
	}
}

// Load reads every *.txt file at the root of fsys.
// Returns ErrNoFrames if no file yields a non-empty frame.
func Load(fsys fs.FS) (Set, error) {
	names, err := fs.Glob(fsys, "*.txt")
	if err != nil {
		return Set{}, fmt.Errorf("frames: listing: %w", err)
	}
	sort.Strings(names)

	var set Set
	found := 0
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return Set{}, fmt.Errorf("frames: reading %s: %w", name, err)
		}
		f := Parse(strings.TrimSuffix(name, path.Ext(name)), string(data))
		if f.Empty() {
			continue
		}
		found++
		switch kindOf(name) {
		case KindGarbage:
			set.Garbage = append(set.Garbage, f)
		case KindExplosion:
			set.Explosion = append(set.Explosion, f)
		case KindGameOver:
			set.GameOver = f
		default:
			set.Rocket = append(set.Rocket, f)
		}
	}

	if found == 0 {
		return Set{}, ErrNoFrames
	}
	return set, nil
}

// LoadDir reads frames from a directory on disk.
// A missing or empty directory is an error.
func LoadDir(dir string) (Set, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Set{}, fmt.Errorf("frames: %w", err)
	}
	if !info.IsDir() {
		return Set{}, fmt.Errorf("frames: %s is not a directory", dir)
	}
	set, err := Load(os.DirFS(dir))
	if err != nil {
		return Set{}, fmt.Errorf("frames: loading %s: %w", dir, err)
	}
	return set, nil
}

// Default returns the built-in frames.
func Default() Set {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		panic(err)
	}
	set, err := Load(sub)
	if err != nil {
		panic(err)
	}
	return set
}

// WithDefaults fills every empty kind from the built-in frames.
func (s Set) WithDefaults() Set {
	def := Default()
	if len(s.Rocket) == 0 {
		s.Rocket = def.Rocket
	}
	if len(s.Garbage) == 0 {
		s.Garbage = def.Garbage
	}
	if len(s.Explosion) == 0 {
		s.Explosion = def.Explosion
	}
	if s.GameOver.Empty() {
		s.GameOver = def.GameOver
	}
	return s
}

// Missing lists the kinds that have no frames.
func (s Set) Missing() []Kind {
	var out []Kind
	if len(s.Rocket) == 0 {
		out = append(out, KindRocket)
	}
	if len(s.Garbage) == 0 {
		out = append(out, KindGarbage)
	}
	if len(s.Explosion) == 0 {
		out = append(out, KindExplosion)
	}
	if s.GameOver.Empty() {
		out = append(out, KindGameOver)
	}
	return out
}

// RocketSequence returns the ship animation with each frame held for
// the given number of ticks.
func (s Set) RocketSequence(hold int) []Frame {
	hold = max(hold, 1)
	out := make([]Frame, 0, len(s.Rocket)*hold)
	for _, f := range s.Rocket {
		for range hold {
			out = append(out, f)
		}
	}
	return out
}
