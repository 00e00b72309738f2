package logger

// LogEntry is a single recorded event. Exactly one of the event fields is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	Command     *Command     `json:"command,omitempty"`
	Launch      *Launch      `json:"launch,omitempty"`
	Exit        *Exit        `json:"exit,omitempty"`
	LaunchError *LaunchError `json:"launch_error,omitempty"`
	Chdir       *Chdir       `json:"chdir,omitempty"`
}

// LogType is implemented by every event that can be stored in a LogEntry.
type LogType interface {
	setOn(le *LogEntry)
}

// GetLogType returns the event held by the entry or nil if there is none.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le.Command != nil:
		return le.Command
	case le.Launch != nil:
		return le.Launch
	case le.Exit != nil:
		return le.Exit
	case le.LaunchError != nil:
		return le.LaunchError
	case le.Chdir != nil:
		return le.Chdir
	default:
		return nil
	}
}

// Command is logged for every non-empty line before it's dispatched.
type Command struct {
	Argv    []string `json:"argv"`
	Builtin bool     `json:"builtin"`
}

func (e *Command) setOn(le *LogEntry) { le.Command = e }

// Launch is logged once an external process has started.
type Launch struct {
	Argv         []string `json:"argv"`
	ResolvedPath string   `json:"resolved_path"`
	Pid          int      `json:"pid"`
	Background   bool     `json:"background"`
}

func (e *Launch) setOn(le *LogEntry) { le.Launch = e }

// Exit is logged when an external process has been reaped.
type Exit struct {
	Argv       []string `json:"argv"`
	Pid        int      `json:"pid"`
	ExitCode   int      `json:"exit_code"`
	Background bool     `json:"background"`
}

func (e *Exit) setOn(le *LogEntry) { le.Exit = e }

// LaunchError is logged when an external process couldn't be started.
type LaunchError struct {
	Argv  []string `json:"argv"`
	Error string   `json:"error"`
}

func (e *LaunchError) setOn(le *LogEntry) { le.LaunchError = e }

// Chdir is logged when the working directory changes or fails to change.
type Chdir struct {
	Dir   string `json:"dir"`
	Error string `json:"error,omitempty"`
}

func (e *Chdir) setOn(le *LogEntry) { le.Chdir = e }
