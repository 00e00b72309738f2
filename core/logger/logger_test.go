package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTime() time.Time {
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestJsonLinesLogRecorder(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewJsonLinesLogRecorder(buf)
	l.TimeSource = fixedTime

	session := l.Sessionless()
	require.Nil(t, session.Record(&Command{Argv: []string{"cd", "/tmp"}, Builtin: true}))
	require.Nil(t, session.Record(&Exit{Argv: []string{"false"}, Pid: 10, ExitCode: 1}))

	expected := `{"timestamp_micros":1136171045000000,"command":{"argv":["cd","/tmp"],"builtin":true}}
{"timestamp_micros":1136171045000000,"exit":{"argv":["false"],"pid":10,"exit_code":1,"background":false}}
`
	assert.Equal(t, expected, buf.String())
}

func TestNewSession(t *testing.T) {
	l := NewNopLogger()
	a, b := l.NewSession(), l.NewSession()

	assert.NotEmpty(t, a.SessionID())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
	assert.Nil(t, a.Record(&Chdir{Dir: "/"}))
}

func TestReadJSONLinesLog(t *testing.T) {
	buf := &bytes.Buffer{}
	session := NewJsonLinesLogRecorder(buf).NewSession()

	events := []LogType{
		&Command{Argv: []string{"ls", "-l"}},
		&Launch{Argv: []string{"ls", "-l"}, ResolvedPath: "/bin/ls", Pid: 1},
		&Exit{Argv: []string{"ls", "-l"}, Pid: 1, ExitCode: 0},
		&Command{Argv: []string{"nope"}},
		&LaunchError{Argv: []string{"nope"}, Error: "not found"},
		&Command{Argv: []string{"cd", "/missing"}, Builtin: true},
		&Chdir{Dir: "/missing", Error: "no such file or directory"},
	}
	for _, e := range events {
		require.Nil(t, session.Record(e))
	}

	var read []*LogEntry
	require.Nil(t, ReadJSONLinesLog(buf, func(le *LogEntry) {
		read = append(read, le)
	}))

	require.Len(t, read, len(events))
	for i, le := range read {
		assert.Equal(t, events[i], le.GetLogType())
		assert.Equal(t, session.SessionID(), le.SessionID)
	}
}

func TestReport(t *testing.T) {
	report := NewReport()
	for _, le := range []*LogEntry{
		{SessionID: "a", Command: &Command{Argv: []string{"ls"}}},
		{SessionID: "a", Launch: &Launch{Argv: []string{"ls"}, ResolvedPath: "/bin/ls"}},
		{SessionID: "a", Exit: &Exit{Argv: []string{"ls"}, ExitCode: 2}},
		{SessionID: "b", Command: &Command{Argv: []string{"ls"}}},
		{SessionID: "b", Command: &Command{Argv: []string{"bg", "sleep"}, Builtin: true}},
		{SessionID: "b", Launch: &Launch{Argv: []string{"sleep"}, ResolvedPath: "/bin/sleep", Background: true}},
		{SessionID: "b", LaunchError: &LaunchError{Argv: []string{"nope"}, Error: "not found"}},
		{SessionID: "b", Chdir: &Chdir{Dir: "/x", Error: "missing"}},
		{SessionID: "b"},
	} {
		report.Update(le)
	}

	assert.Equal(t, 9, report.LogEntries)
	assert.Equal(t, 1, report.InvalidEntries)
	assert.Equal(t, 3, report.Sessions.Get("a"))
	assert.Equal(t, 2, report.Command.CommandNames.Get("ls"))
	assert.Equal(t, 1, report.Command.Builtins)
	assert.Equal(t, 2, report.Command.External)
	assert.Equal(t, 1, report.Launch.Foreground)
	assert.Equal(t, 1, report.Launch.Background)
	assert.Equal(t, 1, report.Exit.Codes.Get("ls", "2"))
	assert.Equal(t, 1, report.LaunchError.Errors.Get("nope", "not found"))
	assert.Equal(t, 1, report.Chdir.Failures.Get("/x"))

	_, err := json.Marshal(report)
	assert.Nil(t, err)
}

func TestPathCounterMarshal(t *testing.T) {
	ctr := NewPathCounter("command", "exit_code")
	ctr.Increment("ls", "0")
	ctr.Increment("ls", "0")
	ctr.Increment("cat", "1")

	out, err := json.Marshal(ctr)
	require.Nil(t, err)
	assert.JSONEq(t, `[
		{"count":2,"event":{"command":"ls","exit_code":"0"}},
		{"count":1,"event":{"command":"cat","exit_code":"1"}}
	]`, string(out))
}
