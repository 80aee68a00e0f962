package supportscolor

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// TeamCity gained ANSI color support in 9.1.
	teamcityVersionPattern = regexp.MustCompile(`^(9\.(0*[1-9]\d*)\.|\d{2,}\.)`)

	term256Pattern   = regexp.MustCompile(`(?i)-256(color)?$`)
	termBasicPattern = regexp.MustCompile(`(?i)^screen|^xterm|^vt100|^vt220|^rxvt|color|ansi|cygwin|linux`)
)

// Terminals that advertise true color through TERM rather than COLORTERM.
var trueColorTerms = map[string]bool{
	"xterm-kitty":   true,
	"xterm-ghostty": true,
	"wezterm":       true,
}

var (
	fullColorCIs  = [...]string{"GITHUB_ACTIONS", "GITEA_ACTIONS", "CIRCLECI"}
	basicColorCIs = [...]string{"TRAVIS", "APPVEYOR", "GITLAB_CI", "BUILDKITE", "DRONE"}
)

// envForceLevel interprets FORCE_COLOR. "true" and the empty string force
// basic color, "false" forces none, and a bare integer forces that exact
// level; anything else (including integers outside 0-3) forces nothing.
func (r *Resolver) envForceLevel() (level ColorLevel, ok bool) {
	value, present := r.getenv("FORCE_COLOR")
	if !present {
		return ColorLevelNone, false
	}
	switch value {
	case "true", "":
		return ColorLevelBasic, true
	case "false":
		return ColorLevelNone, true
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 || 3 < parsed {
		return ColorLevelNone, false
	}
	return ColorLevel(parsed), true
}

// terminalTypeLevel infers a level from COLORTERM, TERM and TERM_PROGRAM,
// first match wins.
func (r *Resolver) terminalTypeLevel() ColorLevel {
	colorterm, haveColorterm := r.getenv("COLORTERM")
	if colorterm == "truecolor" {
		return ColorLevelAnsi16m
	}

	term, _ := r.getenv("TERM")
	if trueColorTerms[term] {
		return ColorLevelAnsi16m
	}

	if program, ok := r.getenv("TERM_PROGRAM"); ok {
		switch program {
		case "iTerm.app":
			version, _ := r.getenv("TERM_PROGRAM_VERSION")
			if majorVersion(version) >= 3 {
				return ColorLevelAnsi16m
			}
			return ColorLevelAnsi256
		case "Apple_Terminal":
			return ColorLevelAnsi256
		}
		// other terminal programs fall through to the TERM heuristics
	}

	if term256Pattern.MatchString(term) {
		return ColorLevelAnsi256
	}
	if termBasicPattern.MatchString(term) {
		return ColorLevelBasic
	}
	if haveColorterm {
		return ColorLevelBasic
	}
	return ColorLevelNone
}

// ciLevel maps known CI environments to the color they render; unrecognized
// CI systems keep whatever floor was already established.
func (r *Resolver) ciLevel(floor ColorLevel) ColorLevel {
	for _, name := range fullColorCIs {
		if r.hasenv(name) {
			return ColorLevelAnsi16m
		}
	}
	for _, name := range basicColorCIs {
		if r.hasenv(name) {
			return ColorLevelBasic
		}
	}
	if name, _ := r.getenv("CI_NAME"); name == "codeship" {
		return ColorLevelBasic
	}
	return floor
}

func (r *Resolver) teamcityLevel() ColorLevel {
	version, _ := r.getenv("TEAMCITY_VERSION")
	if teamcityVersionPattern.MatchString(version) {
		return ColorLevelBasic
	}
	return ColorLevelNone
}

// majorVersion parses the leading numeric run of a dotted version string's
// first component, returning 0 when there is none.
func majorVersion(version string) int {
	first, _, _ := strings.Cut(version, ".")
	end := 0
	for end < len(first) && '0' <= first[end] && first[end] <= '9' {
		end++
	}
	parsed, err := strconv.Atoi(first[:end])
	if err != nil {
		return 0
	}
	return parsed
}
