// Released under an MIT license. See LICENSE.

// Package options parses xda's command line.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "xda 0.1.0"

//nolint:gochecknoglobals
var usage = `xda

Usage:
  xda [options] SCRIPT
  xda [options] -c COMMAND
  xda [options]
  xda -h
  xda -v

Arguments:
  SCRIPT  Path to an xda script.

Options:
  -c, --command=COMMAND  Run the specified commands.
  -i, --interactive      Invert interactive mode.
  -s, --stdin            Read the script from stdin.
  --config=FILE          Read settings from a YAML or TOML file.
  --dir=DIR              Directory holding the log sink and exported files.
  --log-file=NAME        Name of the log sink written by LOG.
  --log-level=LEVEL      Diagnostics level (trace, debug, info, warn, error).
  --out=FILE             Export the output log to FILE after running.
  -h, --help             Display this help.
  -v, --version          Print xda version.

If xda's stdin is a TTY, and xda was invoked with no SCRIPT, COMMAND or
--stdin, each line entered is run against the same session. Otherwise the
whole script is read and run once.
`

// T (options) holds the parsed command line.
type T struct {
	Command     string // Script text given with -c.
	Config      string // Settings file.
	Dir         string // Overrides the configured directory.
	Interactive bool   // Run a read-eval-print loop.
	LogFile     string // Overrides the configured log sink.
	LogLevel    string // Overrides the configured diagnostics level.
	Message     string // Help or version text. Nothing else is set.
	Out         string // Export target for the final output log.
	Script      string // Path to a script file.
}

type options = T

// Parse parses argv. Terminal reports whether stdin is a TTY.
func Parse(argv []string, terminal bool) (*options, error) {
	message := ""

	p := &docopt.Parser{
		HelpHandler: func(_ error, usage string) {
			message = usage
		},
	}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, fmt.Errorf("%w\n%s", err, message)
	}

	if message != "" {
		return &options{Message: message}, nil
	}

	o := &options{}

	o.Command, _ = opts.String("--command")
	o.Config, _ = opts.String("--config")
	o.Dir, _ = opts.String("--dir")
	o.LogFile, _ = opts.String("--log-file")
	o.LogLevel, _ = opts.String("--log-level")
	o.Out, _ = opts.String("--out")
	o.Script, _ = opts.String("SCRIPT")

	if o.Command == "" && o.Script == "" {
		stdin, _ := opts.Bool("--stdin")
		invert, _ := opts.Bool("--interactive")
		o.Interactive = (terminal && !stdin) != invert
	}

	return o, nil
}

// Terminal returns true if stdin is a TTY.
func Terminal() bool {
	fd := os.Stdin.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
