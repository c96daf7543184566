// Released under an MIT license. See LICENSE.

// Package lexer extracts bracketed commands from xda scripts.
//
// The xda lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Everything outside a '<' and the nearest following '>' is discarded.
// A '<' is not special inside a command. A command may not span lines: a '<'
// whose '>' would only be found after a newline produces no token.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/xda/internal/common/struct/loc"
	"github.com/michaelmacinnis/xda/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	state action   // Current action.

	line  int   // Current line.
	runes int   // Runes scanned on the current line.
	start loc.T // Location of the current command's '<'.

	label string

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		label:  label,
		line:   1,
		state:  skipText,
		tokens: make(chan *token.T, 1),
	}
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()

		select {
		case t := <-l.tokens:
			return t
		default:
			if l.index >= len(l.bytes) {
				return nil
			}

			l.state = l.state(l)
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.line++
		l.runes = 0
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(v string) {
	l.tokens <- token.New(v, l.start)
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	bytes := strings.Join(l.queue, "")

	if l.first < len(l.bytes) {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.first = l.index
}

// T states.

func scanCommand(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return scanCommand
		case '\n':
			l.skip()
			return skipText
		case '>':
			l.emit(l.Text())
			l.accept(r, w)
			l.skip()

			return skipText
		}

		l.accept(r, w)
	}
}

func skipText(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.skip()
			return skipText
		case '<':
			l.accept(r, w)
			l.skip()

			l.start = loc.T{
				Char: l.runes,
				Line: l.line,
				Name: l.label,
			}

			return scanCommand
		}

		l.accept(r, w)
	}
}
