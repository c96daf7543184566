// Released under an MIT license. See LICENSE.

// Package token is shared by the xda lexer and parser.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/xda/internal/common/struct/loc"
)

// T (token) is the raw text of one bracketed command.
type T struct {
	source loc.T
	value  string
}

type token = T

// New creates a new token.
func New(value string, source loc.T) *token {
	return &token{
		source: source,
		value:  value,
	}
}

// Source returns the location of the token's opening '<'.
func (t *token) Source() loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" + t.source.String() + ")"
}

// Value returns the text between the delimiters.
func (t *token) Value() string {
	return t.value
}
