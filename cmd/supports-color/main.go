package main

import (
	"fmt"
	"os"

	docopt "github.com/docopt/docopt-go"
	"golang.org/x/term"

	supportscolor "github.com/jdmiranda/supports-color"
	"github.com/jdmiranda/supports-color/ansi"
)

const version = "supports-color 1.0.0"

func main() {
	usage := `supports-color.
supports-color reports what level of ANSI color the current terminal
environment supports: none, basic (16 colors), 256 colors, or true color.
It combines color flags, environment variables such as FORCE_COLOR, TERM
and COLORTERM, CI signatures, and (on Windows) the OS build number into a
single verdict.

Usage:
	supports-color [options]
	supports-color -h | --help
	supports-color --version

Options:
	--stderr          Check standard error instead of standard output.
	--no-flags        Don't sniff the argument list for color flags.
	--color=<when>    Request a level: always, never, true, false, 256,
	                  full, truecolor or 16m.
	--no-color        Ask for no color.
	-q --quiet        Don't print anything; just set the exit code.
	-h --help         Show this screen.
	--version         Show version.

Exits 0 when color is supported and 1 when it is not.`

	arguments, _ := docopt.Parse(usage, nil, true, version, false)

	// --color and --no-color are declared only so docopt accepts them; the
	// resolver sniffs them out of os.Args itself.
	options := supportscolor.Options{
		IgnoreFlags: arguments["--no-flags"].(bool),
	}

	name := "stdout"
	fd := os.Stdout.Fd()
	enable := ansi.EnableStdout
	if arguments["--stderr"].(bool) {
		name = "stderr"
		fd = os.Stderr.Fd()
		enable = ansi.EnableStderr
	}

	resolver := supportscolor.NewResolver()
	stream := &supportscolor.Stream{IsTerminal: term.IsTerminal(int(fd))}
	result := resolver.Resolve(stream, &options)

	if result.SupportsColor {
		if err := enable(); err != nil {
			fmt.Fprintln(os.Stderr, "supports-color: could not enable ANSI processing:", err.Error())
		}
	}

	if !arguments["--quiet"].(bool) {
		fmt.Printf("%s: level %d (%s)\n", name, int(result.Level), result.Level)
		fmt.Printf("basic: %v  256: %v  16m: %v\n", result.HasBasic, result.Has256, result.Has16m)
	}

	if !result.SupportsColor {
		os.Exit(1)
	}
}
