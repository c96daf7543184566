// Released under an MIT license. See LICENSE.

// Package command provides the classified form of a bracketed xda command.
package command

import (
	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/xda/internal/common/struct/loc"
)

// Kind is a command's classification.
type Kind int

// Command kinds. Unrecognized commands are ignored by the engine.
const (
	Unrecognized Kind = iota
	Start
	Stop
	SetAPI
	Connect
	Stat
	Log
	Export
	Compress
	Standalone
	Send
)

//nolint:gochecknoglobals
var names = [...]string{
	Unrecognized: "unrecognized",
	Start:        "start",
	Stop:         "stop",
	SetAPI:       "set-api",
	Connect:      "connect",
	Stat:         "stat",
	Log:          "log",
	Export:       "export",
	Compress:     "compress",
	Standalone:   "standalone",
	Send:         "send",
}

// String returns the name of the kind k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return names[Unrecognized]
	}

	return names[k]
}

// T (command) is a raw command string and its classification.
type T struct {
	Kind   Kind
	Source loc.T
	Text   string
}

type command = T

// New creates a new command.
func New(kind Kind, text string, source loc.T) *command {
	return &command{
		Kind:   kind,
		Source: source,
		Text:   text,
	}
}

// String returns the command's string representation. Useful for debugging.
func (c *command) String() string {
	return c.Kind.String() + " " + adapted.CanonicalString(c.Text) +
		" (" + c.Source.String() + ")"
}
