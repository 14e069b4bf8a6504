package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrEmptyArgs is the error returned when a launch is requested with no
// program name.
var ErrEmptyArgs = errors.New("no program to run")

// Stdio is a descriptor table: the three standard streams handed to every
// spawned child. Each interpreter instance owns its own table so redirection
// stays scoped to that instance and tests can run against scratch
// descriptors instead of the process's real streams.
type Stdio struct {
	In  *os.File
	Out *os.File
	Err *os.File
}

// OSStdio returns a table backed by the current process's standard streams.
func OSStdio() *Stdio {
	return &Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Launcher spawns commands with a descriptor table as their standard
// streams.
type Launcher struct {
	Table *Stdio
}

func NewLauncher(table *Stdio) *Launcher {
	return &Launcher{Table: table}
}

// Launch resolves args[0] on PATH and spawns it with the launcher's
// descriptor table and args as the child's argv. When wait is set, Launch
// blocks until the child exits; otherwise the process handle is released
// immediately and the child is left to be collected when this process exits.
//
// Failures are reported as a single line on the table's error stream and
// returned; the caller's descriptor state is never affected.
func (l *Launcher) Launch(args []string, wait bool) error {
	proc, err := l.spawn(args, []*os.File{l.Table.In, l.Table.Out, l.Table.Err})
	if err != nil {
		return err
	}

	if !wait {
		return proc.Release()
	}

	if _, err := proc.Wait(); err != nil {
		return l.report(err)
	}
	return nil
}

func (l *Launcher) spawn(args []string, files []*os.File) (*os.Process, error) {
	if len(args) == 0 {
		return nil, l.report(ErrEmptyArgs)
	}

	path, err := exec.LookPath(args[0])
	if err != nil {
		return nil, l.report(fmt.Errorf("%s: command not found", args[0]))
	}

	proc, err := os.StartProcess(path, args, &os.ProcAttr{Files: files})
	if err != nil {
		return nil, l.report(fmt.Errorf("failed to start %s: %v", args[0], err))
	}

	return proc, nil
}

// report writes a single diagnostic line to the table's error stream and
// hands the error back for callers that track whether anything launched.
func (l *Launcher) report(err error) error {
	fmt.Fprintf(l.Table.Err, "osh: %v\n", err)
	return err
}
