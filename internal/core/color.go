package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Attr is a bit set of text intensity attributes.
type Attr uint8

const (
	AttrDim Attr = 1 << iota
	AttrBold
)

// AttrNone is the normal intensity.
const AttrNone Attr = 0

// Style combines a color with intensity attributes.
type Style struct {
	Color Color
	Attr  Attr
}

// StyleDefault is the plain terminal style.
var StyleDefault = Style{}

// Dim returns a copy of the style rendered at reduced intensity.
func (s Style) Dim() Style {
	s.Attr = (s.Attr &^ AttrBold) | AttrDim
	return s
}

// Bold returns a copy of the style rendered at increased intensity.
func (s Style) Bold() Style {
	s.Attr = (s.Attr &^ AttrDim) | AttrBold
	return s
}

// Has reports whether all bits of a are set.
func (s Style) Has(a Attr) bool {
	return s.Attr&a == a
}
