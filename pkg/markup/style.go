package markup

import "fmt"

// ColorKind tags the variant held by a Color.
type ColorKind uint8

const (
	// ColorNone is the zero value: no foreground color is set.
	ColorNone ColorKind = iota
	// ColorNamed is one of the sixteen named terminal colors.
	ColorNamed
	// ColorIndexed is an entry of the 256-color palette.
	ColorIndexed
	// ColorRGB is a 24-bit color.
	ColorRGB
)

// NamedColor is the closed set of color names understood by the color resolver.
// The numeric value of each constant is its ANSI palette index.
type NamedColor uint8

const (
	Black NamedColor = iota
	DarkRed
	DarkGreen
	DarkYellow
	DarkBlue
	DarkMagenta
	DarkCyan
	Grey
	DarkGrey
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var namedColorNames = [...]string{
	Black:       "black",
	DarkRed:     "darkred",
	DarkGreen:   "darkgreen",
	DarkYellow:  "darkyellow",
	DarkBlue:    "darkblue",
	DarkMagenta: "darkmagenta",
	DarkCyan:    "darkcyan",
	Grey:        "grey",
	DarkGrey:    "darkgrey",
	Red:         "red",
	Green:       "green",
	Yellow:      "yellow",
	Blue:        "blue",
	Magenta:     "magenta",
	Cyan:        "cyan",
	White:       "white",
}

// String returns the canonical lowercase name.
func (n NamedColor) String() string {
	if int(n) < len(namedColorNames) {
		return namedColorNames[n]
	}
	return fmt.Sprintf("NamedColor(%d)", uint8(n))
}

// ANSI returns the 0-15 palette index of the color.
func (n NamedColor) ANSI() uint8 {
	return uint8(n)
}

// Color is a tagged foreground color value. The zero value means "no color".
type Color struct {
	Kind    ColorKind
	Name    NamedColor
	Index   uint8
	R, G, B uint8
}

// Named returns a Color for one of the named colors.
func Named(n NamedColor) Color {
	return Color{Kind: ColorNamed, Name: n}
}

// Indexed returns a Color for a 256-color palette entry.
func Indexed(i uint8) Color {
	return Color{Kind: ColorIndexed, Index: i}
}

// RGB returns a 24-bit Color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// IsSet reports whether the color holds a value.
func (c Color) IsSet() bool {
	return c.Kind != ColorNone
}

// Hex returns the #rrggbb form of an RGB color and "" for other kinds.
func (c Color) Hex() string {
	if c.Kind != ColorRGB {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	switch c.Kind {
	case ColorNamed:
		return c.Name.String()
	case ColorIndexed:
		return fmt.Sprintf("idx:%d", c.Index)
	case ColorRGB:
		return c.Hex()
	default:
		return "default"
	}
}

// Style is the formatting active at a point of the input.
// The zero value is the terminal default.
type Style struct {
	Bold      bool
	Underline bool
	Color     Color
}

// IsPlain reports whether the style carries no formatting.
func (s Style) IsPlain() bool {
	return !s.Bold && !s.Underline && !s.Color.IsSet()
}

// Run is a non-empty span of text sharing one style.
type Run struct {
	Text  string
	Style Style
}
