// Released under an MIT license. See LICENSE.

// Package reader pairs the xda lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/xda/internal/common/struct/command"
	"github.com/michaelmacinnis/xda/internal/reader/lexer"
	"github.com/michaelmacinnis/xda/internal/reader/parser"
)

// T (reader) encapsulates the xda lexer and parser.
type T struct {
	done []*command.T
	p    *parser.T
	s    *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{
		s: lexer.New(name),
	}

	r.p = parser.New(func(c *command.T) {
		r.done = append(r.done, c)
	}, r.s.Token)

	return r
}

// Read returns the commands in script, in order.
func Read(name, script string) []*command.T {
	return New(name).Scan(script)
}

// Scan adds text to the reader and returns any commands it completes.
// A command left open at the end of text may be completed by a later call.
func (r *reader) Scan(text string) []*command.T {
	r.s.Scan(text)
	r.p.Parse()

	done := r.done
	r.done = nil

	return done
}
