// Package thermo converts temperatures between scales and runs the
// interactive conversion program.
package thermo

import (
	"strconv"
	"strings"
)

// Scale is a temperature scale.
type Scale int

// Supported scales, in display order
const (
	Celsius Scale = iota
	Fahrenheit
	Kelvin
	Rankine
	Reaumur
)

var scales = []Scale{Celsius, Fahrenheit, Kelvin, Rankine, Reaumur}

// Scales returns every scale in display order.
func Scales() []Scale {
	out := make([]Scale, len(scales))
	copy(out, scales)
	return out
}

// Name returns the display name.
func (s Scale) Name() string {
	switch s {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	case Kelvin:
		return "Kelvin"
	case Rankine:
		return "Rankine"
	case Reaumur:
		return "Réaumur"
	default:
		return "Scale(" + strconv.Itoa(int(s)) + ")"
	}
}

// Symbol returns the unit symbol.
func (s Scale) Symbol() string {
	switch s {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	case Rankine:
		return "°R"
	case Reaumur:
		return "°Ré"
	default:
		return "?"
	}
}

func (s Scale) String() string {
	return s.Name()
}

// ToCelsius converts v from s to degrees Celsius.
func (s Scale) ToCelsius(v float64) float64 {
	switch s {
	case Fahrenheit:
		return (v - 32) * 5 / 9
	case Kelvin:
		return v - 273.15
	case Rankine:
		return (v - 491.67) * 5 / 9
	case Reaumur:
		return v * 5 / 4
	default:
		return v
	}
}

// FromCelsius converts c degrees Celsius to s.
func (s Scale) FromCelsius(c float64) float64 {
	switch s {
	case Fahrenheit:
		return c*9/5 + 32
	case Kelvin:
		return c + 273.15
	case Rankine:
		return (c + 273.15) * 9 / 5
	case Reaumur:
		return c * 4 / 5
	default:
		return c
	}
}

// Convert converts v from one scale to another through Celsius.
func Convert(v float64, from, to Scale) float64 {
	return to.FromCelsius(from.ToCelsius(v))
}

// Resolve finds a scale by its 1-based position, its name or its symbol.
// Names and symbols match case-insensitively, with or without the degree
// sign and accents.
func Resolve(input string) (Scale, bool) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return 0, false
	}

	if idx, err := strconv.Atoi(raw); err == nil {
		if idx >= 1 && idx <= len(scales) {
			return scales[idx-1], true
		}
	}

	norm := normalize(raw)
	for _, s := range scales {
		if normalize(s.Name()) == norm || normalize(s.Symbol()) == norm {
			return s, true
		}
	}
	return 0, false
}

func normalize(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = strings.ReplaceAll(out, "°", "")
	return strings.ReplaceAll(out, "é", "e")
}
