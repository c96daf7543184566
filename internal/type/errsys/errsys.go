// Released under an MIT license. See LICENSE.

// Package errsys provides xda's system error type.
//
// A system error is an I/O fault raised while a command was writing to the
// log sink or an export target. It records the command that failed.
package errsys

import (
	"errors"

	"github.com/michaelmacinnis/xda/internal/common/struct/command"
)

// T (errsys) wraps an error with the command that caused it.
type T struct {
	error

	Command *command.T
}

// New creates a new errsys to wrap the error err.
func New(c *command.T, err error) *T {
	return &T{error: err, Command: c}
}

// Error returns the text of the errsys e, prefixed by the command's location.
func (e *T) Error() string {
	if e.Command == nil {
		return e.error.Error()
	}

	return e.Command.Source.String() + ": " + e.Command.Kind.String() +
		": " + e.error.Error()
}

// Unwrap returns the wrapped error.
func (e *T) Unwrap() error {
	return e.error
}

// Is returns true if err is, or wraps, a *T.
func Is(err error) bool {
	var e *T
	return errors.As(err, &e)
}

// To returns the *T in err's chain, or nil if there is none.
func To(err error) *T {
	var e *T
	if errors.As(err, &e) {
		return e
	}

	return nil
}
