// Released under an MIT license. See LICENSE.

package commands

import (
	"regexp"
	"strconv"
	"strings"
)

//nolint:gochecknoglobals
var nodeID = regexp.MustCompile(`node\[(\d+)\]`)

func start(env Env, text string) error {
	digits, ok := find(nodeID, text)
	if !ok {
		return ErrMalformed
	}

	id, err := strconv.Atoi(digits)
	if err != nil {
		// Too large for an int.
		return ErrMalformed
	}

	s := env.Session()
	s.Start(id)
	s.Append("Engine started for node " + strconv.Itoa(id) + ".")

	return nil
}

func stat(env Env, text string) error {
	s := env.Session()

	if !strings.Contains(text, "Node[*]") {
		s.Append("Invalid Stat command.")
		return nil
	}

	s.Append("Node statistics:")

	for _, line := range records(env) {
		s.Append(line)
	}

	return nil
}

func stop(env Env, text string) error {
	if !strings.Contains(text, "node [*]") {
		return ErrMalformed
	}

	s := env.Session()
	s.StopAll()
	s.Append("All nodes stopped.")

	return nil
}

// records renders every node, in ascending identifier order.
func records(env Env) []string {
	s := env.Session()
	ids := s.IDs()

	lines := make([]string, 0, len(ids))

	for _, id := range ids {
		n, _ := s.Node(id)
		lines = append(lines, "Node "+strconv.Itoa(id)+": "+n.String())
	}

	return lines
}
