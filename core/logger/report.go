package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	Sessions       StrCounter `json:"sessions"`
	InvalidEntries int        `json:"invalid_log_entries,omitempty"`

	Command     CommandReport     `json:"command_report"`
	Launch      LaunchReport      `json:"launch_report"`
	Exit        ExitReport        `json:"exit_report"`
	LaunchError LaunchErrorReport `json:"launch_error_report"`
	Chdir       ChdirReport       `json:"chdir_report"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		Exit:        ExitReport{Codes: NewPathCounter("command", "exit_code")},
		LaunchError: LaunchErrorReport{Errors: NewPathCounter("command", "error")},
	}
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	if le.SessionID != "" {
		r.Sessions.Increment(le.SessionID)
	}

	switch event := le.GetLogType().(type) {
	case *Command:
		r.Command.update(event)
	case *Launch:
		r.Launch.update(event)
	case *Exit:
		r.Exit.update(event)
	case *LaunchError:
		r.LaunchError.update(event)
	case *Chdir:
		r.Chdir.update(event)
	default:
		r.InvalidEntries++
	}
}

type CommandReport struct {
	// Name of the command and the number of times it was entered.
	CommandNames StrCounter `json:"command_names"`
	Builtins     int        `json:"builtins"`
	External     int        `json:"external"`
}

func (r *CommandReport) update(c *Command) {
	if len(c.Argv) > 0 {
		r.CommandNames.Increment(c.Argv[0])
	}
	if c.Builtin {
		r.Builtins++
	} else {
		r.External++
	}
}

type LaunchReport struct {
	ResolvedCommandPaths StrCounter `json:"resolved_command_paths"`
	Foreground           int        `json:"foreground"`
	Background           int        `json:"background"`
}

func (r *LaunchReport) update(l *Launch) {
	r.ResolvedCommandPaths.Increment(l.ResolvedPath)
	if l.Background {
		r.Background++
	} else {
		r.Foreground++
	}
}

type ExitReport struct {
	Codes *PathCounter `json:"codes"`
}

func (r *ExitReport) update(e *Exit) {
	name := ""
	if len(e.Argv) > 0 {
		name = e.Argv[0]
	}
	r.Codes.Increment(name, strconv.Itoa(e.ExitCode))
}

type LaunchErrorReport struct {
	Errors *PathCounter `json:"errors"`
}

func (r *LaunchErrorReport) update(e *LaunchError) {
	name := ""
	if len(e.Argv) > 0 {
		name = e.Argv[0]
	}
	r.Errors.Increment(name, e.Error)
}

type ChdirReport struct {
	Count    int        `json:"count"`
	Failures StrCounter `json:"failures"`
}

func (r *ChdirReport) update(c *Chdir) {
	r.Count++
	if c.Error != "" {
		r.Failures.Increment(c.Dir)
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of times a tuple of strings was seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic(fmt.Sprintf("wrong number of columns to add, got %d want %d", len(toAdd), len(ctr.cols)))
	}

	ctr.internal[toKey(toAdd...)]++
}

// Get returns the count for the given tuple.
func (ctr *PathCounter) Get(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implemnts custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
