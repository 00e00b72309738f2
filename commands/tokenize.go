package commands

import "strings"

// delimiters separate tokens on an input line.
const delimiters = " \t\r\n\a"

// Command is a tokenized input line. The first element is the program or
// builtin name and the rest are its arguments.
type Command []string

// Tokenize splits line on runs of delimiters. Delimiters never appear in the
// output and no token is empty, so a blank line yields an empty Command.
func Tokenize(line string) Command {
	return Command(strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	}))
}

// Empty is true if the command has no tokens.
func (c Command) Empty() bool {
	return len(c) == 0
}

// Name returns the first token or the empty string.
func (c Command) Name() string {
	if c.Empty() {
		return ""
	}
	return c[0]
}

// Arg returns the i-th token where 0 is the name. The second value is false
// once there are no more arguments.
func (c Command) Arg(i int) (string, bool) {
	if i < 0 || i >= len(c) {
		return "", false
	}
	return c[i], true
}

// Args returns everything after the name.
func (c Command) Args() []string {
	if c.Empty() {
		return nil
	}
	return c[1:]
}

func (c Command) String() string {
	return strings.Join(c, " ")
}
