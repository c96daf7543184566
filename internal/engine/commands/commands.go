// Released under an MIT license. See LICENSE.

// Package commands provides the handlers for each kind of xda command.
//
// A handler that cannot find its argument does nothing and returns
// ErrMalformed. Any other error is an I/O fault.
package commands

import (
	"errors"
	"regexp"

	"github.com/go-git/go-billy/v5"

	"github.com/michaelmacinnis/xda/internal/common/struct/command"
	"github.com/michaelmacinnis/xda/internal/engine/session"
)

// ErrMalformed is returned when a command's argument pattern is missing.
var ErrMalformed = errors.New("malformed command")

// Env provides handlers with the session and the files they can write.
type Env interface {
	Files() billy.Filesystem
	LogName() string
	Session() *session.T
}

// Handler executes the command text against env.
type Handler func(env Env, text string) error

// Handlers returns the handler for each recognized command kind.
func Handlers() map[command.Kind]Handler {
	return map[command.Kind]Handler{
		command.Compress:   compress,
		command.Connect:    connect,
		command.Export:     export,
		command.Log:        logStat,
		command.Send:       send,
		command.SetAPI:     setAPI,
		command.Standalone: standalone,
		command.Start:      start,
		command.Stat:       stat,
		command.Stop:       stop,
	}
}

// find returns the first submatch of re in s.
func find(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	return m[1], true
}
