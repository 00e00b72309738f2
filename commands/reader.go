package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
)

// ErrInterrupt is returned by a LineReader when the user interrupts the line
// being edited.
var ErrInterrupt = errors.New("interrupt")

// LineReader reads one line of input at a time.
type LineReader interface {
	// ReadLine writes prompt and blocks until a full line is read. The line
	// doesn't include the trailing newline or carriage return. io.EOF is returned once the input
	// has no more data.
	ReadLine(prompt string) (string, error)
	Close() error
}

type bufferedReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewBufferedReader reads lines of any length from in, writing prompts to out.
func NewBufferedReader(in io.Reader, out io.Writer) LineReader {
	return &bufferedReader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (r *bufferedReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	line, err := r.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", io.EOF
	case errors.Is(err, io.EOF):
		// The last line wasn't terminated, the next read reports EOF.
		return line, nil
	case err != nil:
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (r *bufferedReader) Close() error {
	return nil
}

type readlineReader struct {
	instance *readline.Instance
}

// NewReadlineReader reads lines from a terminal with line editing.
func NewReadlineReader(stdin io.Reader, stdout, stderr io.Writer) (LineReader, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: stdout,
		Stderr: stderr,
		FuncIsTerminal: func() bool {
			return true
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	instance, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &readlineReader{instance: instance}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.instance.SetPrompt(prompt)
	line, err := r.instance.Readline()

	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupt
	case errors.Is(err, io.EOF):
		return "", io.EOF
	case err != nil:
		return "", err
	}
	return line, nil
}

func (r *readlineReader) Close() error {
	return r.instance.Close()
}
