// Package supportscolor determines what level of ANSI color an output
// stream's terminal environment supports, combining color-forcing flags,
// environment variables, TTY-ness, CI signatures and (on Windows) the OS
// build number into a single verdict.
package supportscolor

// ColorLevel represents the ANSI color level supported by the terminal.
type ColorLevel int

const (
	// ColorLevelNone represents a terminal that does not support color at all.
	ColorLevelNone ColorLevel = 0
	// ColorLevelBasic represents a terminal with basic 16 color support.
	ColorLevelBasic ColorLevel = 1
	// ColorLevelAnsi256 represents a terminal with 256 color support.
	ColorLevelAnsi256 ColorLevel = 2
	// ColorLevelAnsi16m represents a terminal with full true color support.
	ColorLevelAnsi16m ColorLevel = 3
)

func (level ColorLevel) String() string {
	switch level {
	case ColorLevelBasic:
		return "basic"
	case ColorLevelAnsi256:
		return "ansi256"
	case ColorLevelAnsi16m:
		return "ansi16m"
	default:
		return "none"
	}
}

// Support describes the color capabilities resolved for a stream. The zero
// value means no color support; every level at or above a capability's
// threshold sets that capability's flag.
type Support struct {
	SupportsColor bool
	Level         ColorLevel

	// HasBasic is true for any supported level; Has256 and Has16m are set
	// for ColorLevelAnsi256 and ColorLevelAnsi16m respectively.
	HasBasic bool
	Has256   bool
	Has16m   bool
}

func supportForLevel(level ColorLevel) Support {
	if level <= ColorLevelNone {
		return Support{}
	}
	return Support{
		SupportsColor: true,
		Level:         level,
		HasBasic:      true,
		Has256:        level >= ColorLevelAnsi256,
		Has16m:        level >= ColorLevelAnsi16m,
	}
}
