package markup

import (
	"strconv"
	"strings"
)

var colorNames = map[string]NamedColor{
	"black":       Black,
	"red":         Red,
	"green":       Green,
	"yellow":      Yellow,
	"blue":        Blue,
	"magenta":     Magenta,
	"purple":      Magenta,
	"cyan":        Cyan,
	"white":       White,
	"grey":        Grey,
	"gray":        Grey,
	"darkgrey":    DarkGrey,
	"darkgray":    DarkGrey,
	"darkred":     DarkRed,
	"darkgreen":   DarkGreen,
	"darkyellow":  DarkYellow,
	"darkblue":    DarkBlue,
	"darkmagenta": DarkMagenta,
	"darkpurple":  DarkMagenta,
	"darkcyan":    DarkCyan,
}

// ResolveColor turns a color specification into a Color.
//
// Accepted forms, tried in order:
//
//	#RGB, #RGBA, #RRGGBB, #RRGGBBAA   hex, alpha ignored
//	0-255                             256-color palette index
//	red, darkblue, purple, ...        case-insensitive names
//
// The second result is false when spec matches none of them.
func ResolveColor(spec string) (Color, bool) {
	s := strings.TrimSpace(spec)

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	if idx, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Indexed(uint8(idx)), true
	}

	if name, ok := colorNames[strings.ToLower(s)]; ok {
		return Named(name), true
	}

	return Color{}, false
}

func parseHex(s string) (Color, bool) {
	hex := strings.TrimSpace(strings.TrimPrefix(s, "#"))

	var r, g, b byte
	var ok bool
	switch len(hex) {
	case 3, 4:
		// shorthand: each nibble is doubled, the alpha nibble dropped
		if r, ok = hexByte(hex[0], hex[0]); !ok {
			return Color{}, false
		}
		if g, ok = hexByte(hex[1], hex[1]); !ok {
			return Color{}, false
		}
		if b, ok = hexByte(hex[2], hex[2]); !ok {
			return Color{}, false
		}
		if len(hex) == 4 {
			if _, ok = hexByte(hex[3], hex[3]); !ok {
				return Color{}, false
			}
		}
	case 6, 8:
		if r, ok = hexByte(hex[0], hex[1]); !ok {
			return Color{}, false
		}
		if g, ok = hexByte(hex[2], hex[3]); !ok {
			return Color{}, false
		}
		if b, ok = hexByte(hex[4], hex[5]); !ok {
			return Color{}, false
		}
		if len(hex) == 8 {
			if _, ok = hexByte(hex[6], hex[7]); !ok {
				return Color{}, false
			}
		}
	default:
		return Color{}, false
	}
	return RGB(r, g, b), true
}

func hexByte(hi, lo byte) (byte, bool) {
	h, ok := hexNibble(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexNibble(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
