// Released under an MIT license. See LICENSE.

// Package node provides the record kept for each simulated node.
package node

import (
	"github.com/michaelmacinnis/xda/internal/common/type/status"
)

// T (node) is a simulated node's record.
type T struct {
	Status status.T
}

type node = T

// New creates a new, started node record.
func New() *node {
	return &node{Status: status.Started}
}

// Stop marks the node n as stopped.
func (n *node) Stop() {
	n.Status = status.Stopped
}

// String returns the record as it appears in statistics and the log sink.
func (n *node) String() string {
	return "{status: " + n.Status.String() + "}"
}
