// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

//nolint:gochecknoglobals
var exportPath = regexp.MustCompile(`out\s*=>\s*"(.*?)"`)

// Save overwrites path in fs with the newline-joined lines.
func Save(fs billy.Filesystem, path string, lines []string) error {
	return write(fs, path, []byte(strings.Join(lines, "\n")))
}

func export(env Env, text string) error {
	path, ok := find(exportPath, text)
	if !ok {
		return ErrMalformed
	}

	s := env.Session()

	err := Save(env.Files(), path, s.Output())
	if err != nil {
		return err
	}

	s.Append("Output exported to " + path + ".")

	return nil
}

func logStat(env Env, _ string) error {
	name := env.LogName()

	var b strings.Builder
	for _, line := range records(env) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	err := write(env.Files(), name, []byte(b.String()))
	if err != nil {
		return err
	}

	env.Session().Append("Node statistics logged to " + name + ".")

	return nil
}

func write(fs billy.Filesystem, name string, data []byte) error {
	err := util.WriteFile(fs, name, data, 0o644)
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	return nil
}
