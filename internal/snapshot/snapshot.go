// Package snapshot saves screenshots of a game screen as plain text and as
// PNG images.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// Cell metrics of basicfont.Face7x13.
const (
	cellW = 7
	cellH = 13
)

var background = color.RGBA{12, 12, 28, 255}

// palette maps screen colors to RGB. The default color is a soft white.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {220, 220, 230, 255},
	core.ColorRed:          {205, 49, 49, 255},
	core.ColorGreen:        {13, 188, 121, 255},
	core.ColorYellow:       {229, 229, 16, 255},
	core.ColorBlue:         {36, 114, 200, 255},
	core.ColorMagenta:      {188, 63, 188, 255},
	core.ColorCyan:         {17, 168, 205, 255},
	core.ColorWhite:        {229, 229, 229, 255},
	core.ColorBrightRed:    {241, 76, 76, 255},
	core.ColorBrightYellow: {245, 245, 67, 255},
	core.ColorBrightWhite:  {255, 255, 255, 255},
	core.ColorOrange:       {255, 135, 0, 255},
	core.ColorGray:         {138, 138, 138, 255},
}

// cellColor returns the drawing color for a styled cell. Dim halves the
// brightness; bold is drawn at full palette intensity.
func cellColor(st core.Style) color.RGBA {
	c, ok := palette[st.Color]
	if !ok {
		c = palette[core.ColorDefault]
	}
	if st.Has(core.AttrDim) {
		c.R, c.G, c.B = c.R/2, c.G/2, c.B/2
	}
	return c
}

// Image renders the screen with one fixed-size font cell per screen cell.
func Image(s *core.Screen) image.Image {
	w, h := max(s.Width(), 1), max(s.Height(), 1)
	dc := gg.NewContext(w*cellW, h*cellH)

	dc.SetColor(background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			dc.SetColor(cellColor(cell.Style))
			// Baseline sits 2px above the bottom of the cell.
			px := float64(x * cellW)
			py := float64((y+1)*cellH - 2)
			dc.DrawString(string(cell.Rune), px, py)
			if cell.Style.Has(core.AttrBold) {
				dc.DrawString(string(cell.Rune), px+1, py)
			}
		}
	}
	return dc.Image()
}

// SavePNG writes the rendered screen to path.
func SavePNG(path string, s *core.Screen) error {
	if err := gg.SavePNG(path, Image(s)); err != nil {
		return fmt.Errorf("snapshot: saving %s: %w", path, err)
	}
	return nil
}

// SaveText writes the screen's glyphs to path.
func SaveText(path string, s *core.Screen) error {
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return fmt.Errorf("snapshot: saving %s: %w", path, err)
	}
	return nil
}

// Save writes both a .txt and a .png screenshot into dir, named after the
// game and the time. Returns the written paths.
func Save(dir, gameID string, s *core.Screen, now time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: creating %s: %w", dir, err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", gameID, now.Format("20060102_150405")))
	txt, png := base+".txt", base+".png"

	if err := SaveText(txt, s); err != nil {
		return nil, err
	}
	if err := SavePNG(png, s); err != nil {
		return []string{txt}, err
	}
	return []string{txt, png}, nil
}

// DefaultDir returns ~/.spacegarbage/screenshots, or a relative
// screenshots directory when the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".spacegarbage", "screenshots")
}
