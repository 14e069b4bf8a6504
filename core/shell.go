package core

import (
	"fmt"
	"io"
	"log"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/oshkit/osh/core/config"
	"github.com/oshkit/osh/core/interp"
	"github.com/oshkit/osh/core/launch"
)

// Shell is the prompt loop around the interpreter: it reads a line, checks
// for the termination markers, and hands everything else to the interpreter.
type Shell struct {
	Config   *config.Configuration
	Readline *readline.Instance
	Interp   *interp.Interpreter

	errColor *color.Color
}

// NewShell builds a shell over the process's standard streams.
func NewShell(cfg *config.Configuration) (*Shell, error) {
	table := launch.OSStdio()

	rlCfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(table.In),
		Stdout: table.Out,
		Stderr: table.Err,
		FuncGetWidth: func() int {
			width, _, err := term.GetSize(int(table.Out.Fd()))
			if err != nil {
				return 80
			}
			return width
		},
		FuncIsTerminal: func() bool {
			return term.IsTerminal(int(table.In.Fd()))
		},
	}
	if err := rlCfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	interpreter := interp.New(table)
	interpreter.MaxArgs = cfg.MaxArgs

	return &Shell{
		Config:   cfg,
		Readline: rl,
		Interp:   interpreter,
		errColor: color.New(color.FgRed, color.Bold),
	}, nil
}

// Run reads and interprets lines until a termination marker or EOF.
func (s *Shell) Run() error {
	defer s.Readline.Close()

	s.Readline.SetPrompt(s.Config.Prompt)
	for {
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue
		}

		if isExit(line) {
			return nil
		}

		if err := s.Interp.Run(line); err != nil {
			s.reportErr(err)
		}
	}
}

// isExit reports whether the line's first token is a termination marker.
func isExit(line string) bool {
	first, _ := interp.Split(line, 1)
	return len(first) == 1 && (first[0] == "exit" || first[0] == "exit()")
}

// reportErr prints a single diagnostic line, in color when on a terminal.
func (s *Shell) reportErr(err error) {
	stderr := s.Interp.Table.Err
	if term.IsTerminal(int(stderr.Fd())) {
		s.errColor.Fprintf(stderr, "osh: %v\n", err)
		return
	}
	fmt.Fprintf(stderr, "osh: %v\n", err)
}
