package supportscolor

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Stream identifies an output stream for detection purposes. The only
// observable attribute is whether it is connected to a terminal.
type Stream struct {
	IsTerminal bool
}

// Options adjusts how detection runs. The zero value gives the defaults.
type Options struct {
	// IgnoreFlags disables sniffing of the argument list for --color and
	// --no-color style flags; only environment and platform signals are
	// consulted.
	IgnoreFlags bool
}

// Sources is an immutable snapshot of the process state consulted during
// detection. A Resolver built from sources never touches live process state,
// so resolution is a pure function of the snapshot.
type Sources struct {
	// Args is the argument list to sniff for color flags, without the
	// program name.
	Args []string
	// Env maps environment variable names to values.
	Env map[string]string
	// Platform is a GOOS-style identifier; "windows" and "win32" are both
	// recognized as Windows.
	Platform string
	// OSVersion is the Windows release triple formatted "major.minor.build".
	// Components that fail to parse count as 0.
	OSVersion string
}

// Resolver determines color support from its sources. The zero value (or
// NewResolver) reads live process state: os.Args, the process environment,
// runtime.GOOS and, on Windows, the real OS build number.
//
// All memoization lives on the resolver, so independent resolvers never
// contaminate each other; cached values are immutable once computed and the
// caches are guarded, so a resolver is safe for concurrent use.
type Resolver struct {
	sources  Sources
	snapshot bool

	flags flagCache

	mu      sync.Mutex
	version *versionTriple
	stdout  *Support
	stderr  *Support
}

type versionTriple struct {
	major, minor, build int
}

// NewResolver returns a resolver backed by live process state.
func NewResolver() *Resolver {
	return &Resolver{}
}

// NewResolverFromSources returns a resolver that consults only the given
// snapshot, for simulations and tests.
func NewResolverFromSources(sources Sources) *Resolver {
	return &Resolver{sources: sources, snapshot: true}
}

func (r *Resolver) argv() []string {
	if r.snapshot {
		return r.sources.Args
	}
	return os.Args[1:]
}

func (r *Resolver) getenv(key string) (string, bool) {
	if r.snapshot {
		value, ok := r.sources.Env[key]
		return value, ok
	}
	return os.LookupEnv(key)
}

func (r *Resolver) hasenv(key string) bool {
	_, ok := r.getenv(key)
	return ok
}

func (r *Resolver) platform() string {
	if r.snapshot {
		return r.sources.Platform
	}
	return runtime.GOOS
}

func isWindows(platform string) bool {
	return platform == "windows" || platform == "win32"
}

func (r *Resolver) osVersionTriple() (major, minor, build int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.version == nil {
		var v versionTriple
		if r.snapshot {
			v.major, v.minor, v.build = parseVersionTriple(r.sources.OSVersion)
		} else {
			v.major, v.minor, v.build = windowsVersionNumbers()
		}
		r.version = &v
	}
	return r.version.major, r.version.minor, r.version.build
}

// parseVersionTriple splits a "major.minor.build" string; components that do
// not parse become 0, which fails every threshold comparison.
func parseVersionTriple(version string) (major, minor, build int) {
	parts := strings.SplitN(version, ".", 3)
	var nums [3]int
	for i := 0; i < len(parts) && i < 3; i++ {
		if parsed, err := strconv.Atoi(parts[i]); err == nil {
			nums[i] = parsed
		}
	}
	return nums[0], nums[1], nums[2]
}

// Resolve determines the color support for the given stream. A nil stream
// means no stream is under consideration (the non-terminal short-circuit is
// skipped); nil opts means the defaults.
func (r *Resolver) Resolve(stream *Stream, opts *Options) Support {
	var options Options
	if opts != nil {
		options = *opts
	}
	return supportForLevel(r.resolveLevel(stream, options))
}

// resolveLevel runs the precedence chain; the first decisive signal wins.
func (r *Resolver) resolveLevel(stream *Stream, opts Options) ColorLevel {
	sniffFlags := !opts.IgnoreFlags

	// FORCE_COLOR overrides color flags when both are present.
	force, haveForce := r.envForceLevel()
	if !haveForce && sniffFlags {
		force, haveForce = r.flags.forceLevel(r.argv())
	}

	// An explicit disable wins over everything else.
	if haveForce && force == ColorLevelNone {
		return ColorLevelNone
	}

	if sniffFlags {
		if level := r.flags.explicitLevel(r.argv()); level > ColorLevelNone {
			return level
		}
	}

	// Azure DevOps pipelines report non-terminal streams but still render
	// color, so this has to run before the terminal check.
	if r.hasenv("TF_BUILD") && r.hasenv("AGENT_NAME") {
		return ColorLevelBasic
	}

	if stream != nil && !stream.IsTerminal && !haveForce {
		return ColorLevelNone
	}

	floor := ColorLevelNone
	if haveForce {
		floor = force
	}

	if value, _ := r.getenv("TERM"); value == "dumb" {
		return floor
	}

	if isWindows(r.platform()) {
		// Windows 10 build 10586 introduced 256-color support and build
		// 14931 introduced true color; older consoles get basic color.
		major, _, build := r.osVersionTriple()
		if major >= 10 && build >= 10586 {
			if build >= 14931 {
				return ColorLevelAnsi16m
			}
			return ColorLevelAnsi256
		}
		return ColorLevelBasic
	}

	if r.hasenv("CI") {
		return r.ciLevel(floor)
	}

	if r.hasenv("TEAMCITY_VERSION") {
		return r.teamcityLevel()
	}

	if level := r.terminalTypeLevel(); level > ColorLevelNone {
		return level
	}

	return floor
}

// Stdout reports color support for standard output. The result is computed
// on first call and memoized until ClearCaches.
func (r *Resolver) Stdout() Support {
	return r.memoized(&r.stdout, os.Stdout.Fd())
}

// Stderr reports color support for standard error, memoized like Stdout.
func (r *Resolver) Stderr() Support {
	return r.memoized(&r.stderr, os.Stderr.Fd())
}

func (r *Resolver) memoized(slot **Support, fd uintptr) Support {
	r.mu.Lock()
	cached := *slot
	r.mu.Unlock()
	if cached != nil {
		return *cached
	}

	result := r.Resolve(&Stream{IsTerminal: term.IsTerminal(int(fd))}, nil)

	// First writer wins; a concurrent duplicate computation yields the same
	// value anyway.
	r.mu.Lock()
	if *slot == nil {
		*slot = &result
	}
	result = **slot
	r.mu.Unlock()
	return result
}

// ClearCaches drops every memoized result so the next resolution re-reads
// its sources. Intended for tests that mutate the environment.
func (r *Resolver) ClearCaches() {
	r.flags.clear()
	r.mu.Lock()
	r.version = nil
	r.stdout = nil
	r.stderr = nil
	r.mu.Unlock()
}

var defaultResolver = NewResolver()

// Stdout reports color support for the process's standard output.
func Stdout() Support { return defaultResolver.Stdout() }

// Stderr reports color support for the process's standard error.
func Stderr() Support { return defaultResolver.Stderr() }

// Resolve runs detection against live process state.
func Resolve(stream *Stream, opts *Options) Support {
	return defaultResolver.Resolve(stream, opts)
}

// ClearCaches resets the default resolver's memoization.
func ClearCaches() { defaultResolver.ClearCaches() }
