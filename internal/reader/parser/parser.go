// Released under an MIT license. See LICENSE.

// Package parser classifies the commands extracted by the xda lexer.
//
// Classification is an ordered list of predicates. The first predicate
// that matches the command text, with surrounding whitespace removed,
// decides its kind.
package parser

import (
	"strings"

	"github.com/michaelmacinnis/xda/internal/common/struct/command"
	"github.com/michaelmacinnis/xda/internal/common/struct/token"
)

// T holds the state of the parser.
type T struct {
	emit func(*command.T) // Function to call to emit a classified command.
	item func() *token.T  // Function to call to get another token.
}

type rule struct {
	kind  command.Kind
	word  string
	match func(s, word string) bool
}

//nolint:gochecknoglobals
var rules = []rule{
	{command.Start, "Start(", strings.HasPrefix},
	{command.Stop, "Stop(", strings.HasPrefix},
	{command.SetAPI, "NodeAPI", strings.Contains},
	{command.Connect, "Conect", strings.HasPrefix},
	{command.Stat, "Stat", strings.HasPrefix},
	{command.Log, "LOG", strings.HasPrefix},
	{command.Export, "out", strings.HasPrefix},
	{command.Compress, "short", strings.HasPrefix},
	{command.Standalone, "alone", strings.HasPrefix},
	{command.Send, "send", strings.HasPrefix},
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of commands.
func New(emit func(*command.T), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Classify returns the kind of the command text s.
func Classify(s string) command.Kind {
	s = strings.TrimSpace(s)

	for _, r := range rules {
		if r.match(s, r.word) {
			return r.kind
		}
	}

	return command.Unrecognized
}

// Keywords returns the words that introduce each kind of command,
// in classification order.
func Keywords() []string {
	words := make([]string, len(rules))
	for i, r := range rules {
		words[i] = r.word
	}

	return words
}

// Parse consumes tokens and emits commands until there are no more tokens.
// Unrecognized commands are emitted too; it is up to the consumer to ignore them.
func (p *T) Parse() {
	for t := p.item(); t != nil; t = p.item() {
		v := t.Value()
		p.emit(command.New(Classify(v), v, t.Source()))
	}
}
