package commands

import (
	"errors"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/josephlewis42/acmshell/core"
	"github.com/josephlewis42/acmshell/core/logger"
	"github.com/spf13/afero"
)

// Launcher runs commands that aren't builtins.
type Launcher interface {
	// Foreground runs cmd and waits for it to exit or be killed.
	Foreground(cmd Command) error
	// Background starts cmd and returns immediately.
	Background(cmd Command) error
}

// ProcessLauncher runs commands as child processes of the shell. Children
// inherit the shell's environment and working directory.
type ProcessLauncher struct {
	// Fs is used to search PATH for executables.
	Fs afero.Fs

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Log *logger.SessionLogger
}

var _ Launcher = (*ProcessLauncher)(nil)

// NewProcessLauncher creates a launcher that searches the real filesystem.
func NewProcessLauncher(stdin io.Reader, stdout, stderr io.Writer, events *logger.SessionLogger) *ProcessLauncher {
	return &ProcessLauncher{
		Fs:     afero.NewOsFs(),
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Log:    events,
	}
}

func (p *ProcessLauncher) record(event logger.LogType) {
	if p.Log == nil {
		return
	}
	if err := p.Log.Record(event); err != nil {
		log.Printf("couldn't record event: %v", err)
	}
}

func (p *ProcessLauncher) start(cmd Command, background bool) (*exec.Cmd, error) {
	if cmd.Empty() {
		return nil, errors.New("no command given")
	}

	path, err := core.LookPath(p.Fs, os.Getenv("PATH"), cmd.Name())
	if err != nil {
		p.record(&logger.LaunchError{Argv: cmd, Error: err.Error()})
		return nil, err
	}

	proc := &exec.Cmd{
		Path:   path,
		Args:   cmd,
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
		Stderr: p.Stderr,
	}
	if err := proc.Start(); err != nil {
		p.record(&logger.LaunchError{Argv: cmd, Error: err.Error()})
		return nil, err
	}

	p.record(&logger.Launch{
		Argv:         cmd,
		ResolvedPath: path,
		Pid:          proc.Process.Pid,
		Background:   background,
	})
	return proc, nil
}

// wait blocks until proc terminates. A non-zero exit isn't an error.
func (p *ProcessLauncher) wait(proc *exec.Cmd, cmd Command, background bool) error {
	err := proc.Wait()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return err
	}

	p.record(&logger.Exit{
		Argv:       cmd,
		Pid:        proc.Process.Pid,
		ExitCode:   proc.ProcessState.ExitCode(),
		Background: background,
	})
	return nil
}

// Foreground implements Launcher.Foreground.
func (p *ProcessLauncher) Foreground(cmd Command) error {
	proc, err := p.start(cmd, false)
	if err != nil {
		return err
	}
	return p.wait(proc, cmd, false)
}

// Background implements Launcher.Background. The child is reaped when it
// exits but its status is never reported to the user.
func (p *ProcessLauncher) Background(cmd Command) error {
	proc, err := p.start(cmd, true)
	if err != nil {
		return err
	}

	go func() {
		if err := p.wait(proc, cmd, true); err != nil {
			log.Printf("background %s: %v", cmd.Name(), err)
		}
	}()
	return nil
}
