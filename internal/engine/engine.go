// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for classified xda commands.
package engine

import (
	"errors"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/rs/zerolog"

	"github.com/michaelmacinnis/xda/internal/common/struct/command"
	"github.com/michaelmacinnis/xda/internal/engine/commands"
	"github.com/michaelmacinnis/xda/internal/engine/session"
	"github.com/michaelmacinnis/xda/internal/reader"
	"github.com/michaelmacinnis/xda/internal/type/errsys"
)

// DefaultLogName is the log sink written by LOG commands.
const DefaultLogName = "log.txt"

// T (engine) is a facade in front of the machinery for evaluating xda code.
type T struct {
	files    billy.Filesystem
	handlers map[command.Kind]commands.Handler
	logName  string
	logger   zerolog.Logger
	session  *session.T
}

// Option configures an engine.
type Option func(*T)

// Files sets the filesystem that holds the log sink and export targets.
// The default is an in-memory filesystem.
func Files(fs billy.Filesystem) Option {
	return func(e *T) {
		e.files = fs
	}
}

// LogName sets the name of the log sink.
func LogName(name string) Option {
	return func(e *T) {
		if name != "" {
			e.logName = name
		}
	}
}

// Logger sets the diagnostics logger. The default discards everything.
func Logger(l zerolog.Logger) Option {
	return func(e *T) {
		e.logger = l
	}
}

// New creates a new T.
func New(opts ...Option) *T {
	e := &T{
		handlers: commands.Handlers(),
		logName:  DefaultLogName,
		logger:   zerolog.Nop(),
		session:  session.New(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.files == nil {
		e.files = memfs.New()
	}

	e.logger = e.logger.With().Str("session", e.session.ID.String()).Logger()

	return e
}

// Evaluate executes the command c.
//
// Malformed and unrecognized commands are ignored. The only errors
// returned are I/O faults, as an *errsys.T; the output log is unchanged
// when one occurs.
func (e *T) Evaluate(c *command.T) error {
	h, ok := e.handlers[c.Kind]
	if !ok {
		e.logger.Debug().Stringer("command", c).Msg("ignored")
		return nil
	}

	e.logger.Debug().Stringer("command", c).Msg("evaluating")

	err := h(e, c.Text)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, commands.ErrMalformed):
		e.logger.Debug().Stringer("command", c).Msg("malformed")
		return nil
	}

	e.logger.Error().Err(err).Stringer("command", c).Msg("fault")

	return errsys.New(c, err)
}

// Execute evaluates every command in script, in order, appending to the
// current output log. Faults do not stop later commands. They are joined
// in the returned error.
func (e *T) Execute(name, script string) error {
	var errs []error

	for _, c := range reader.Read(name, script) {
		if err := e.Evaluate(c); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Export writes the output log to path and records that it did.
func (e *T) Export(path string) error {
	err := commands.Save(e.files, path, e.session.Output())
	if err != nil {
		e.logger.Error().Err(err).Str("path", path).Msg("export failed")
		return err
	}

	e.session.Append("Output exported to " + path)

	return nil
}

// Files returns the filesystem that holds the log sink and export targets.
func (e *T) Files() billy.Filesystem {
	return e.files
}

// LogName returns the name of the log sink.
func (e *T) LogName() string {
	return e.logName
}

// Output returns a copy of the output log.
func (e *T) Output() []string {
	return e.session.Output()
}

// Reset discards all nodes, the API reference and the output log.
func (e *T) Reset() {
	e.session.Reset()
}

// Run clears the output log and then executes script.
// Nodes and the API reference carry over from earlier runs.
func (e *T) Run(script string) ([]string, error) {
	e.session.Clear()

	err := e.Execute("script", script)

	return e.session.Output(), err
}

// Session returns the engine's session.
func (e *T) Session() *session.T {
	return e.session
}
