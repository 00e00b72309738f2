package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephlewis42/acmshell/core/logger"
)

// ErrMissingArgument is reported when a builtin needs an argument it wasn't given.
var ErrMissingArgument = errors.New("expected argument")

func missingArgument(name string) error {
	return fmt.Errorf("%w to %q", ErrMissingArgument, name)
}

// Cd is the cd shell builtin
func Cd(s *Shell, cmd Command) Status {
	dir, ok := cmd.Arg(1)
	if !ok {
		s.Errorf("%v", missingArgument(cmd.Name()))
		return StatusContinue
	}

	if err := os.Chdir(dir); err != nil {
		s.Errorf("%v", err)
		s.record(&logger.Chdir{Dir: dir, Error: err.Error()})
		return StatusContinue
	}
	s.record(&logger.Chdir{Dir: dir})
	return StatusContinue
}

// Help lists the builtins.
func Help(s *Shell, cmd Command) Status {
	help := &SimpleCommand{
		Use:   "help",
		Short: "Display information about builtin commands.",
	}

	return help.Run(s, cmd, func() Status {
		w := s.Stdout
		fmt.Fprintln(w, s.color.Sprintf(ColorBoldCyan, "ACM's very own shell"))
		fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
		fmt.Fprintln(w, "The following are built in:")

		for _, name := range s.builtins.List() {
			fmt.Fprintf(w, "  %s\n", name)
		}

		return StatusContinue
	})
}

// Exit quits the shell, arguments are ignored.
func Exit(s *Shell, cmd Command) Status {
	return StatusExit
}

// Bg starts a program without waiting for it to finish.
func Bg(s *Shell, cmd Command) Status {
	prog := Command(cmd.Args())
	if prog.Empty() {
		s.Errorf("%v", missingArgument(cmd.Name()))
		return StatusContinue
	}

	if err := s.launcher.Background(prog); err != nil {
		s.Errorf("%v", err)
	}
	return StatusContinue
}

// HistoryBuiltin prints the session history with line numbers.
func HistoryBuiltin(s *Shell, cmd Command) Status {
	history := &SimpleCommand{
		Use:   "history [-n N]",
		Short: "Display the history list with line numbers.",
	}
	last := history.Flags().IntLong("lines", 'n', 0, "only show the last N entries", "N")

	return history.Run(s, cmd, func() Status {
		if *last < 0 {
			s.Errorf("%s: %d: invalid line count", cmd.Name(), *last)
			return StatusContinue
		}

		entries := s.history.Entries()
		start := 0
		if *last > 0 && *last < len(entries) {
			start = len(entries) - *last
		}

		for i := start; i < len(entries); i++ {
			fmt.Fprintf(s.Stdout, "%5d  %s\n", i+1, entries[i])
		}
		return StatusContinue
	})
}
