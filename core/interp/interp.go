package interp

import (
	"errors"
	"fmt"

	"github.com/oshkit/osh/core/launch"
)

// Interpretation errors. Each one surfaces as a single diagnostic line and
// leaves the interpreter ready for the next line.
var (
	ErrEmptyCommand      = errors.New("please enter a command")
	ErrNoHistory         = errors.New("no commands in history")
	ErrDuplicateRedirect = errors.New("multiple redirects in a single command are unsupported")
	ErrDuplicatePipe     = errors.New("multiple pipes in a single command are unsupported")
	ErrMissingPipeTarget = errors.New("no program to pipe into")
)

// Launcher runs the execution plan built from one line. Implemented by
// *launch.Launcher; tests substitute a recording fake.
type Launcher interface {
	Launch(args []string, wait bool) error
	LaunchPipeline(srcArgs []string, dstProg string, wait bool) error
}

// Interpreter turns one input line into at most one launched command. Each
// instance owns its descriptor table and history, so independent
// interpreters can coexist within a process.
type Interpreter struct {
	Table    *launch.Stdio
	Launcher Launcher
	History  *History
	MaxArgs  int
}

// New builds an interpreter that spawns real processes against table.
func New(table *launch.Stdio) *Interpreter {
	return &Interpreter{
		Table:    table,
		Launcher: launch.NewLauncher(table),
		History:  &History{},
		MaxArgs:  DefaultMaxArgs,
	}
}

// Run interprets a single raw line: tokenize, resolve a history recall,
// scan for control operators, then launch exactly once. The returned error
// is the line's diagnostic; failures inside the launcher are reported on the
// table's error stream by the launcher itself and do not come back here.
func (in *Interpreter) Run(line string) error {
	tokens, err := in.tokenize(line)
	if err != nil {
		return err
	}

	if tokens[0] == RecallMarker {
		stored, ok := in.History.Recall()
		if !ok {
			return ErrNoHistory
		}
		if tokens, err = in.tokenize(stored); err != nil {
			return err
		}
	} else {
		in.History.Record(line)
	}

	return in.execute(tokens)
}

// tokenize splits the line, reporting truncation as a non-fatal warning.
func (in *Interpreter) tokenize(line string) ([]string, error) {
	tokens, truncated := Split(line, in.MaxArgs)
	if truncated {
		fmt.Fprintln(in.Table.Err, "osh: command exceeds the argument limit, cannot fully interpret")
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyCommand
	}
	return tokens, nil
}

// execute scans the tokens left to right, classifying control operators by
// their leading character, and launches the resulting plan. Operators other
// than & consume the following token as their operand. The scan stops at the
// first error and nothing is launched.
func (in *Interpreter) execute(tokens []string) error {
	var (
		args     []string
		wait     = true
		piped    bool
		pipeProg string
		redir    *launch.Redirection
	)

	// Once a redirection exists it is undone whatever happens next, so the
	// table never outlives the line pointing at a redirected file.
	defer func() {
		_ = redir.Restore()
	}()

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok[0] {
		case '<', '>':
			if redir != nil {
				return ErrDuplicateRedirect
			}
			dir := launch.Input
			if tok[0] == '>' {
				dir = launch.Output
			}
			var path string
			if i+1 < len(tokens) {
				i++
				path = tokens[i]
			}
			var err error
			if redir, err = launch.Redirect(in.Table, dir, path); err != nil {
				return err
			}

		case '|':
			if piped {
				return ErrDuplicatePipe
			}
			piped = true
			if i+1 >= len(tokens) {
				return ErrMissingPipeTarget
			}
			i++
			pipeProg = tokens[i]

		case '&':
			wait = false

		default:
			args = append(args, tok)
		}
	}

	// Launcher failures are already reported on the error stream; the
	// redirection above is still restored by the deferred call.
	if piped {
		_ = in.Launcher.LaunchPipeline(args, pipeProg, wait)
	} else {
		_ = in.Launcher.Launch(args, wait)
	}
	return nil
}
