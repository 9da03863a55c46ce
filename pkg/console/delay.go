package console

import (
	"fmt"
	"time"
)

// DefaultPace is the pause used by DefaultDelay unless configured otherwise.
const DefaultPace = 200 * time.Millisecond

type delayKind uint8

const (
	delayNone delayKind = iota
	delayDefault
	delayFixed
)

// Delay is the pause taken after an emission.
type Delay struct {
	kind delayKind
	ms   int
}

var (
	// NoDelay returns immediately.
	NoDelay = Delay{}
	// DefaultDelay pauses for the console's configured default.
	DefaultDelay = Delay{kind: delayDefault}
)

// Millis pauses for ms milliseconds. Zero or negative values do not pause.
func Millis(ms int) Delay {
	if ms <= 0 {
		return NoDelay
	}
	return Delay{kind: delayFixed, ms: ms}
}

// Duration resolves the delay against a default pace.
func (d Delay) Duration(def time.Duration) time.Duration {
	switch d.kind {
	case delayDefault:
		return def
	case delayFixed:
		return time.Duration(d.ms) * time.Millisecond
	default:
		return 0
	}
}

func (d Delay) String() string {
	switch d.kind {
	case delayDefault:
		return "default"
	case delayFixed:
		return fmt.Sprintf("%dms", d.ms)
	default:
		return "none"
	}
}
