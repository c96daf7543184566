package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/xda/internal/common/struct/command"
)

func kinds(cs []*command.T) []command.Kind {
	ks := make([]command.Kind, len(cs))
	for i, c := range cs {
		ks[i] = c.Kind
	}

	return ks
}

func TestRead(t *testing.T) {
	cs := Read("script", `
# Bring up two nodes.
<Start(node[1])> <Start(node[2])>
<NodeAPI = "http://x"> < Conect >
<foobar>
<Stat(Node[*])>
`)

	assert.Equal(t, []command.Kind{
		command.Start,
		command.Start,
		command.SetAPI,
		command.Connect,
		command.Unrecognized,
		command.Stat,
	}, kinds(cs))

	assert.Equal(t, "script:3:18", cs[1].Source.String())
}

func TestReadCountsSpans(t *testing.T) {
	assert.Empty(t, Read("empty", ""))
	assert.Len(t, Read("spans", "<a><b> <c <d> e> <f"), 3)
}

func TestScanAcrossCalls(t *testing.T) {
	r := New("repl")

	assert.Empty(t, r.Scan("<send(he"))

	cs := r.Scan("llo)> <alone()>")
	require.Len(t, cs, 2)
	assert.Equal(t, "send(hello)", cs[0].Text)
	assert.Equal(t, command.Standalone, cs[1].Kind)
}
