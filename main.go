/*
Xda runs scripts written in the xda node-simulation language.

A script is free-form text. Anything between a '<' and the next '>' is a
command; everything else is ignored:

    Bring up a node <Start(node[1])> and point it at
    <NodeAPI = "http://localhost:8080"> then <Conect>.
    <Stat(Node[*])> <LOG()>

Each command appends a line to the output log, which xda prints when the
script finishes. LOG writes the log sink, and --out exports the output log,
in the configured directory.

Xda is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/michaelmacinnis/xda/internal/engine"
	"github.com/michaelmacinnis/xda/internal/system/config"
	"github.com/michaelmacinnis/xda/internal/system/history"
	"github.com/michaelmacinnis/xda/internal/system/logger"
	"github.com/michaelmacinnis/xda/internal/system/options"
	"github.com/michaelmacinnis/xda/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], options.Terminal(), os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, terminal bool, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := options.Parse(argv, terminal)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if o.Message != "" {
		fmt.Fprintln(stdout, o.Message)
		return 0
	}

	c, err := settings(o)
	if err != nil {
		fmt.Fprintln(stderr, "xda:", err)
		return 2
	}

	l, closer, err := logger.New(c.Logging)
	if err != nil {
		fmt.Fprintln(stderr, "xda:", err)
		return 2
	}
	defer closer.Close()

	e := engine.New(
		engine.Files(osfs.New(c.Dir)),
		engine.LogName(c.LogFile),
		engine.Logger(l),
	)

	l.Debug().Str("dir", c.Dir).Str("log_file", c.LogFile).Msg("starting")

	if o.Interactive {
		path := ""
		if c.History {
			path, _ = history.Path()
		}

		if err := ui.Run(e, stdout, path); err != nil {
			fmt.Fprintln(stderr, "xda:", err)
			return 1
		}

		return 0
	}

	name, script, err := source(o, stdin)
	if err != nil {
		fmt.Fprintln(stderr, "xda:", err)
		return 1
	}

	status := 0

	if err := e.Execute(name, script); err != nil {
		fmt.Fprintln(stderr, "xda:", err)
		status = 1
	}

	if o.Out != "" {
		if err := e.Export(o.Out); err != nil {
			fmt.Fprintln(stderr, "xda:", err)
			status = 1
		}
	}

	for _, line := range e.Output() {
		fmt.Fprintln(stdout, line)
	}

	return status
}

// settings returns the configuration with command-line overrides applied.
func settings(o *options.T) (*config.T, error) {
	c, err := config.Load(o.Config)
	if err != nil {
		return nil, err
	}

	if o.Dir != "" {
		c.Dir = o.Dir
	}

	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}

	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}

	return c, nil
}

// source returns the name and text of the script to run.
func source(o *options.T, stdin io.Reader) (string, string, error) {
	switch {
	case o.Command != "":
		return "command", o.Command, nil
	case o.Script != "":
		b, err := os.ReadFile(o.Script)
		if err != nil {
			return "", "", err
		}

		return o.Script, string(b), nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", "", err
	}

	return "stdin", string(b), nil
}
