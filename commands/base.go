package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/josephlewis42/acmshell/core/config"
	getopt "github.com/pborman/getopt/v2"
)

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a sone line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses the builtin's flags from cmd and calls the callback if parsing
// was successful. Failures never stop the shell.
func (s *SimpleCommand) Run(sh *Shell, cmd Command, callback func() Status) Status {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	if err := opts.Getopt(cmd, nil); err != nil {
		fmt.Fprintf(sh.Stderr, "%s: %s\n\n", cmd.Name(), err)
		s.PrintHelp(sh.Stderr)
		return StatusContinue
	}

	if *s.ShowHelp {
		s.PrintHelp(sh.Stdout)
		return StatusContinue
	}

	return callback()
}

var (
	ColorBoldBlue = color.New(color.FgBlue, color.Bold)
	ColorBoldCyan = color.New(color.FgCyan, color.Bold)
	ColorBoldRed  = color.New(color.FgRed, color.Bold)
)

// ColorPrinter decides whether output gets colorized.
type ColorPrinter struct {
	// Mode is one of config.ColorAlways, config.ColorAuto or config.ColorNever.
	Mode string
	// IsTerminal is consulted when Mode is auto.
	IsTerminal bool
}

func (c *ColorPrinter) ShouldColor() bool {
	switch c.Mode {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	default:
		return c.IsTerminal
	}
}

func (c *ColorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if c.ShouldColor() {
		forced := *col
		forced.EnableColor()
		return forced.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}
