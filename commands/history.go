package commands

import "strings"

// History is an append-only log of the commands entered in a session.
type History struct {
	entries       []string
	recordAllArgs bool
}

// NewHistory creates an empty history. By default only the command name and
// its first argument are kept for each entry; recordAllArgs keeps them all.
func NewHistory(recordAllArgs bool) *History {
	return &History{recordAllArgs: recordAllArgs}
}

// Record appends cmd to the history. Empty commands are ignored.
func (h *History) Record(cmd Command) {
	if cmd.Empty() {
		return
	}

	text := cmd.Name()
	switch {
	case h.recordAllArgs:
		text = strings.Join(cmd, " ")
	case len(cmd) > 1:
		text = cmd[0] + " " + cmd[1]
	}

	h.entries = append(h.entries, text)
}

// Entries returns a copy of the recorded entries in insertion order.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}
