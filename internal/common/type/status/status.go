// Released under an MIT license. See LICENSE.

// Package status provides the run state of a simulated node.
package status

// T (status) is a node's run state.
type T int

type status = T

// Node states. The zero value is Started so that a new record is running.
const (
	Started status = iota
	Stopped
)

// String returns the text of the status s.
func (s status) String() string {
	if s == Stopped {
		return "stopped"
	}

	return "started"
}
