package engine

import (
	"bytes"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/xda/internal/common/struct/command"
	"github.com/michaelmacinnis/xda/internal/common/struct/loc"
	"github.com/michaelmacinnis/xda/internal/common/type/status"
	"github.com/michaelmacinnis/xda/internal/type/errsys"
)

type readOnly struct {
	billy.Filesystem
}

func (readOnly) OpenFile(string, int, os.FileMode) (billy.File, error) {
	return nil, fs.ErrPermission
}

func read(t *testing.T, e *T, name string) string {
	t.Helper()

	b, err := util.ReadFile(e.Files(), name)
	require.NoError(t, err)

	return string(b)
}

func TestRunExample(t *testing.T) {
	e := New()

	out, err := e.Run(`<Start(node[1])><NodeAPI = "http://x">< Conect >`)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Engine started for node 1.",
		"NodeAPI set to http://x.",
		"Connecting nodes with API: http://x.",
	}, out)
}

func TestRunConnectWithoutAPI(t *testing.T) {
	out, err := New().Run("<Conect>")
	require.NoError(t, err)

	assert.Equal(t, []string{"NodeAPI is not set. Unable to connect."}, out)
}

func TestRunMalformedStart(t *testing.T) {
	e := New()

	out, err := e.Run("<Start(nodeX)>")
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.Empty(t, e.Session().IDs())
}

func TestRunUnrecognized(t *testing.T) {
	e := New()

	out, err := e.Run("<foobar><Start(node[2])><foobar>")
	require.NoError(t, err)

	assert.Equal(t, []string{"Engine started for node 2."}, out)
	assert.Equal(t, []int{2}, e.Session().IDs())
}

func TestRunStartStatStop(t *testing.T) {
	e := New()

	out, err := e.Run(`
<Start(node[3])>
<Stat(Node[*])>
<Stop(node [*])>
<Stat(Node[*])>
`)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Engine started for node 3.",
		"Node statistics:",
		"Node 3: {status: started}",
		"All nodes stopped.",
		"Node statistics:",
		"Node 3: {status: stopped}",
	}, out)

	n, ok := e.Session().Node(3)
	require.True(t, ok)
	assert.Equal(t, status.Stopped, n.Status)
}

func TestRunClearsOutputButKeepsState(t *testing.T) {
	e := New()

	_, err := e.Run(`<Start(node[1])><NodeAPI = "a">`)
	require.NoError(t, err)

	out, err := e.Run("<Conect><Stat(Node[*])>")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Connecting nodes with API: a.",
		"Node statistics:",
		"Node 1: {status: started}",
	}, out)

	e.Reset()

	out, err = e.Run("<Conect><Stat(Node[*])>")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"NodeAPI is not set. Unable to connect.",
		"Node statistics:",
	}, out)
}

func TestExecuteAppends(t *testing.T) {
	e := New()

	require.NoError(t, e.Execute("a", "<send(1)>"))
	require.NoError(t, e.Execute("b", "<send(2)>"))

	assert.Equal(t, []string{"Sent argument: 1", "Sent argument: 2"}, e.Output())
}

func TestExportRoundTrip(t *testing.T) {
	e := New(Files(memfs.New()))

	out, err := e.Run(`<Start(node[1])><alone()>`)
	require.NoError(t, err)

	c := command.New(command.Export, `out => "trace.txt"`, loc.T{})
	require.NoError(t, e.Evaluate(c))
	require.NoError(t, e.Execute("t", "<send(x)>"))

	assert.Equal(t, strings.Join(out, "\n"), read(t, e, "trace.txt"))

	got := e.Output()
	require.Len(t, got, 4)
	assert.Equal(t, "Output exported to trace.txt.", got[2])
	assert.Equal(t, "Sent argument: x", got[3])
}

func TestScriptExportEndsAtArrow(t *testing.T) {
	files := memfs.New()
	e := New(Files(files))

	// The command ends at the '>' of "=>", leaving a malformed "out =".
	out, err := e.Run(`<send(1)><out => "trace.txt"><send(2)>`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Sent argument: 1", "Sent argument: 2"}, out)

	_, err = files.Stat("trace.txt")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCompressIdempotent(t *testing.T) {
	once := New()
	twice := New()

	script := "<send(  padded  )>"

	_, err := once.Run(script + "<short()>")
	require.NoError(t, err)

	_, err = twice.Run(script + "<short()><short()>")
	require.NoError(t, err)

	trimmed := once.Output()
	assert.Equal(t, []string{"Sent argument:   padded", "Output data compressed."}, trimmed)
	assert.Equal(t, append(trimmed, "Output data compressed."), twice.Output())
}

func TestLogSink(t *testing.T) {
	e := New(LogName("nodes.txt"))

	out, err := e.Run("<Start(node[5])><LOG()>")
	require.NoError(t, err)

	assert.Equal(t, "Node 5: {status: started}\n", read(t, e, "nodes.txt"))
	assert.Equal(t, "Node statistics logged to nodes.txt.", out[1])
	assert.Equal(t, "nodes.txt", e.LogName())
}

func TestDefaultLogName(t *testing.T) {
	e := New(LogName(""))

	_, err := e.Run("<LOG>")
	require.NoError(t, err)

	assert.Equal(t, DefaultLogName, e.LogName())
	assert.Equal(t, "", read(t, e, DefaultLogName))
}

func TestFaultsDoNotStopTheRun(t *testing.T) {
	var buf bytes.Buffer

	e := New(
		Files(readOnly{memfs.New()}),
		Logger(zerolog.New(&buf)),
	)

	out, err := e.Run(`<send(1)><LOG()><send(2)><out => "x.txt"><send(3)>`)
	require.Error(t, err)

	assert.Equal(t, []string{
		"Sent argument: 1",
		"Sent argument: 2",
		"Sent argument: 3",
	}, out)

	assert.ErrorIs(t, err, fs.ErrPermission)

	f := errsys.To(err)
	require.NotNil(t, f)
	assert.Equal(t, command.Log, f.Command.Kind)

	assert.Equal(t, 1, strings.Count(buf.String(), `"message":"fault"`))
	assert.Contains(t, buf.String(), e.Session().ID.String())
}

func TestEvaluateLogsIgnored(t *testing.T) {
	var buf bytes.Buffer

	e := New(Logger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	require.NoError(t, e.Execute("t", "<foobar><Start(node)>"))

	assert.Contains(t, buf.String(), `"message":"ignored"`)
	assert.Contains(t, buf.String(), `"message":"malformed"`)
}

func TestEngineExport(t *testing.T) {
	e := New()

	_, err := e.Run("<send(a)><send(b)>")
	require.NoError(t, err)

	require.NoError(t, e.Export("shown.txt"))

	assert.Equal(t, "Sent argument: a\nSent argument: b", read(t, e, "shown.txt"))
	assert.Equal(t, "Output exported to shown.txt", e.Output()[2])
}

func TestEngineExportFault(t *testing.T) {
	e := New(Files(readOnly{memfs.New()}))

	_, err := e.Run("<send(a)>")
	require.NoError(t, err)

	assert.ErrorIs(t, e.Export("shown.txt"), fs.ErrPermission)
	assert.Equal(t, []string{"Sent argument: a"}, e.Output())
}

func TestDispatchCount(t *testing.T) {
	var buf bytes.Buffer

	e := New(Logger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	require.NoError(t, e.Execute("t", "a <b> c <d><e> <f"))

	lines := strings.Count(buf.String(), "\n")
	assert.Equal(t, 3, lines)
}
