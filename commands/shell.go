package commands

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/josephlewis42/acmshell/core/config"
	"github.com/josephlewis42/acmshell/core/logger"
)

// Options configure a Shell. Only Reader is required.
type Options struct {
	Config   *config.Configuration
	Reader   LineReader
	Launcher Launcher
	Builtins *Registry

	Stdout io.Writer
	Stderr io.Writer

	Log *logger.SessionLogger

	// IsTerminal enables color when the configuration asks for auto.
	IsTerminal bool
}

// Shell is an interactive command interpreter.
type Shell struct {
	Stdout io.Writer
	Stderr io.Writer

	name     string
	prompt   string
	reader   LineReader
	launcher Launcher
	builtins *Registry
	history  *History
	log      *logger.SessionLogger
	color    ColorPrinter
}

// NewShell creates a shell from opts, filling in defaults for anything unset.
func NewShell(opts Options) *Shell {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	if opts.Log == nil {
		opts.Log = logger.NewNopLogger().Sessionless()
	}
	if opts.Builtins == nil {
		opts.Builtins = DefaultBuiltins()
	}
	if opts.Launcher == nil {
		opts.Launcher = NewProcessLauncher(nil, opts.Stdout, opts.Stderr, opts.Log)
	}

	return &Shell{
		Stdout:   opts.Stdout,
		Stderr:   opts.Stderr,
		name:     cfg.ShellName,
		prompt:   cfg.Prompt,
		reader:   opts.Reader,
		launcher: opts.Launcher,
		builtins: opts.Builtins,
		history:  NewHistory(cfg.History.RecordAllArgs),
		log:      opts.Log,
		color: ColorPrinter{
			Mode:       cfg.Color,
			IsTerminal: opts.IsTerminal,
		},
	}
}

// History gets the session's command history.
func (s *Shell) History() *History {
	return s.history
}

// Builtins gets the shell's builtin registry.
func (s *Shell) Builtins() *Registry {
	return s.builtins
}

// Run reads and executes lines until the input ends or a builtin asks the
// shell to exit. Both are a clean exit and return nil.
func (s *Shell) Run() error {
	for {
		line, err := s.reader.ReadLine(s.prompt)

		switch {
		case errors.Is(err, io.EOF):
			return nil // Input closed, quit.

		case errors.Is(err, ErrInterrupt):
			continue // Interrupt clears line.

		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		if s.Execute(line) == StatusExit {
			return nil
		}
	}
}

// Execute tokenizes line, records it in the history and dispatches it.
// Blank lines are ignored.
func (s *Shell) Execute(line string) Status {
	cmd := Tokenize(line)
	if cmd.Empty() {
		return StatusContinue
	}

	s.history.Record(cmd)
	return s.Dispatch(cmd)
}

// Dispatch runs cmd as a builtin if one matches its name, otherwise as an
// external program.
func (s *Shell) Dispatch(cmd Command) Status {
	if cmd.Empty() {
		return StatusContinue
	}

	if builtin, ok := s.builtins.Lookup(cmd.Name()); ok {
		s.record(&logger.Command{Argv: cmd, Builtin: true})
		return builtin.Main(s, cmd)
	}

	s.record(&logger.Command{Argv: cmd})
	if err := s.launcher.Foreground(cmd); err != nil {
		s.Errorf("%v", err)
	}
	return StatusContinue
}

// Errorf writes a diagnostic prefixed with the shell's name to stderr.
func (s *Shell) Errorf(format string, a ...interface{}) {
	prefix := s.color.Sprintf(ColorBoldRed, "%s:", s.name)
	fmt.Fprintf(s.Stderr, "%s %s\n", prefix, fmt.Sprintf(format, a...))
}

func (s *Shell) record(event logger.LogType) {
	if err := s.log.Record(event); err != nil {
		log.Printf("couldn't record event: %v", err)
	}
}
