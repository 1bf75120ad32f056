// Package frames loads the ASCII art shapes animated by the game: rocket
// frames, garbage, explosion phases and the game over banner.
package frames

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// ErrNoFrames is returned when a source holds no usable frame files.
var ErrNoFrames = errors.New("frames: no frames found")

// Frame is a rectangular block of glyph rows. Spaces are transparent.
type Frame struct {
	Name  string
	Lines []string
	cols  int
}

// Parse builds a frame from raw text. Trailing newlines are dropped and
// CRLF line endings are normalized; leading spaces are kept.
func Parse(name, text string) Frame {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")

	f := Frame{Name: name}
	if text == "" {
		return f
	}
	f.Lines = strings.Split(text, "\n")
	for _, line := range f.Lines {
		f.cols = max(f.cols, utf8.RuneCountInString(line))
	}
	return f
}

// Rows returns the frame height.
func (f Frame) Rows() int { return len(f.Lines) }

// Cols returns the width of the widest row.
func (f Frame) Cols() int { return f.cols }

// Size returns the frame extent.
func (f Frame) Size() core.Size {
	return core.Size{Rows: f.Rows(), Cols: f.Cols()}
}

// Empty reports whether the frame has no glyphs.
func (f Frame) Empty() bool {
	return f.Rows() == 0 || f.cols == 0
}

// Draw renders the frame with its top-left corner at (row, col).
// Fractional positions are truncated toward the grid cell they fall in.
func (f Frame) Draw(s *core.Screen, row, col float64) {
	s.DrawFrame(int(row), int(col), f.Lines, false)
}

// Erase clears every cell a previous Draw at the same position touched.
func (f Frame) Erase(s *core.Screen, row, col float64) {
	s.DrawFrame(int(row), int(col), f.Lines, true)
}
