// Released under an MIT license. See LICENSE.

// Package session holds the mutable state of an xda interpreter:
// the node table, the API reference and the output log.
//
// A session is owned by a single engine and is not safe for concurrent use.
package session

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/michaelmacinnis/xda/internal/common/struct/node"
)

// T (session) is the state for one interpreter.
type T struct {
	ID uuid.UUID

	api    string
	nodes  map[int]*node.T
	output []string
}

type session = T

// New creates a new, empty session.
func New() *session {
	return &session{
		ID:    uuid.New(),
		nodes: map[int]*node.T{},
	}
}

// API returns the API reference. It is empty until set.
func (s *session) API() string {
	return s.api
}

// Append adds line to the end of the output log.
func (s *session) Append(line string) {
	s.output = append(s.output, line)
}

// Clear empties the output log. Nodes and the API reference are kept.
func (s *session) Clear() {
	s.output = nil
}

// Compress trims surrounding whitespace from every line of the output log.
func (s *session) Compress() {
	for i, line := range s.output {
		s.output[i] = strings.TrimSpace(line)
	}
}

// IDs returns the identifiers of all known nodes in ascending order.
func (s *session) IDs() []int {
	ids := make([]int, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	return ids
}

// Node returns a copy of the record for node id.
func (s *session) Node(id int) (node.T, bool) {
	n, ok := s.nodes[id]
	if !ok {
		return node.T{}, false
	}

	return *n, true
}

// Output returns a copy of the output log.
func (s *session) Output() []string {
	return append([]string(nil), s.output...)
}

// Reset discards all state. The session keeps its identifier.
func (s *session) Reset() {
	s.api = ""
	s.nodes = map[int]*node.T{}
	s.output = nil
}

// SetAPI sets the API reference used by connect commands.
func (s *session) SetAPI(api string) {
	s.api = api
}

// Start creates, or replaces, a started record for node id.
func (s *session) Start(id int) {
	s.nodes[id] = node.New()
}

// StopAll marks every known node as stopped.
func (s *session) StopAll() {
	for _, n := range s.nodes {
		n.Stop()
	}
}
