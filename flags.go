package supportscolor

import (
	"slices"
	"strings"
	"sync"
)

// hasFlag reports whether flag appears in args before any "--" terminator.
// A single-letter name matches "-x", a longer one matches "--name"; a name
// already carrying a leading dash is matched as given.
func hasFlag(flag string, args []string) bool {
	target := flag
	if !strings.HasPrefix(flag, "-") {
		if len(flag) == 1 {
			target = "-" + flag
		} else {
			target = "--" + flag
		}
	}
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == target {
			return true
		}
	}
	return false
}

// flagCache memoizes flag lookups and the force/explicit levels derived from
// them. Entries are valid only for the argv snapshot they were computed
// against; any change to argv drops all of them.
type flagCache struct {
	mu   sync.Mutex
	args []string
	seen map[string]bool

	force      ColorLevel
	forceOK    bool
	forceValid bool

	explicit      ColorLevel
	explicitValid bool
}

func (c *flagCache) clear() {
	c.mu.Lock()
	c.reset(nil)
	c.mu.Unlock()
}

func (c *flagCache) reset(args []string) {
	c.args = slices.Clone(args)
	c.seen = nil
	c.forceValid = false
	c.explicitValid = false
}

func (c *flagCache) validate(args []string) {
	if !slices.Equal(c.args, args) {
		c.reset(args)
	}
}

func (c *flagCache) lookup(flag string, args []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.validate(args)
	return c.lookupLocked(flag, args)
}

func (c *flagCache) lookupLocked(flag string, args []string) bool {
	if present, ok := c.seen[flag]; ok {
		return present
	}
	present := hasFlag(flag, args)
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	c.seen[flag] = present
	return present
}

// forceLevel returns the level dictated by an explicit enable/disable flag,
// or ok=false when no such flag is present. Disable flags win over enables.
func (c *flagCache) forceLevel(args []string) (level ColorLevel, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.validate(args)
	if !c.forceValid {
		c.force, c.forceOK = c.computeForceLocked(args)
		c.forceValid = true
	}
	return c.force, c.forceOK
}

func (c *flagCache) computeForceLocked(args []string) (ColorLevel, bool) {
	for _, flag := range [...]string{"no-color", "no-colors", "color=false", "color=never"} {
		if c.lookupLocked(flag, args) {
			return ColorLevelNone, true
		}
	}
	for _, flag := range [...]string{"color", "colors", "color=true", "color=always"} {
		if c.lookupLocked(flag, args) {
			return ColorLevelBasic, true
		}
	}
	return ColorLevelNone, false
}

// explicitLevel returns a level explicitly requested with a --color=256
// style flag, or ColorLevelNone when no elevated level was asked for.
func (c *flagCache) explicitLevel(args []string) ColorLevel {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.validate(args)
	if !c.explicitValid {
		c.explicit = c.computeExplicitLocked(args)
		c.explicitValid = true
	}
	return c.explicit
}

func (c *flagCache) computeExplicitLocked(args []string) ColorLevel {
	for _, flag := range [...]string{"color=16m", "color=full", "color=truecolor"} {
		if c.lookupLocked(flag, args) {
			return ColorLevelAnsi16m
		}
	}
	if c.lookupLocked("color=256", args) {
		return ColorLevelAnsi256
	}
	return ColorLevelNone
}
