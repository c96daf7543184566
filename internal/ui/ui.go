// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for xda.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/xda/internal/common/struct/command"
	"github.com/michaelmacinnis/xda/internal/reader"
	"github.com/michaelmacinnis/xda/internal/reader/parser"
	"github.com/michaelmacinnis/xda/internal/system/history"
)

// Evaluator is the interface for things that want to process parsed commands.
type Evaluator interface {
	Evaluate(c *command.T) error
	Output() []string
}

// Run reads lines until end of input, evaluating the commands on each line
// and writing any new output lines to w. If path is not empty, line history
// is loaded from and saved to path.
func Run(e Evaluator, w io.Writer, path string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(complete)

	if path != "" {
		if err := history.Load(path, cli.ReadHistory); err != nil {
			fmt.Fprintln(w, "history:", err)
		}
	}

	r := reader.New("xda")

	for {
		line, err := cli.Prompt("xda> ")

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(w)
			return save(cli, path)
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		evaluate(e, w, r.Scan(line+"\n"))
	}
}

func complete(line string, pos int) (head string, completions []string, tail string) {
	head, tail = line[:pos], line[pos:]

	i := strings.LastIndexByte(head, '<')
	if i < 0 || strings.ContainsRune(head[i:], '>') {
		return head, nil, tail
	}

	word := head[i+1:]

	for _, kw := range parser.Keywords() {
		if strings.HasPrefix(kw, word) {
			completions = append(completions, kw)
		}
	}

	return head[:i+1], completions, tail
}

func evaluate(e Evaluator, w io.Writer, cs []*command.T) {
	before := len(e.Output())

	for _, c := range cs {
		if err := e.Evaluate(c); err != nil {
			fmt.Fprintln(w, "error:", err)
		}
	}

	for _, line := range e.Output()[before:] {
		fmt.Fprintln(w, line)
	}
}

func save(cli *liner.State, path string) error {
	if path == "" {
		return nil
	}

	return history.Save(path, cli.WriteHistory)
}
