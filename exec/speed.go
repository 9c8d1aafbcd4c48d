package exec

import "time"

// Speed selects the pacing interval inserted after each applied command.
type Speed int

const (
	Instant Speed = iota
	Fast
	Normal
	Slow
)

// pacing is the fixed delay table keyed by speed. Process-wide immutable
// configuration data.
var pacing = map[Speed]time.Duration{
	Instant: 0,
	Fast:    30 * time.Millisecond,
	Normal:  150 * time.Millisecond,
	Slow:    500 * time.Millisecond,
}

// Delay returns the pacing interval for the speed. Unrecognized values
// default to Normal.
func (s Speed) Delay() time.Duration {
	if d, ok := pacing[s]; ok {
		return d
	}

	return pacing[Normal]
}

// String returns the speed's name.
func (s Speed) String() string {
	switch s {
	case Instant:
		return "instant"
	case Fast:
		return "fast"
	case Normal:
		return "normal"
	case Slow:
		return "slow"
	default:
		return "normal"
	}
}

// ParseSpeed maps a speed name to its level. Unrecognized names default to
// Normal.
func ParseSpeed(name string) Speed {
	switch name {
	case "instant":
		return Instant
	case "fast":
		return Fast
	case "normal":
		return Normal
	case "slow":
		return Slow
	default:
		return Normal
	}
}
