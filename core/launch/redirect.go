package launch

import (
	"errors"
	"fmt"
	"os"
)

// Direction selects which half of the descriptor table a redirection
// replaces.
type Direction int

const (
	// Input replaces the table's standard input with a file opened
	// read-only.
	Input Direction = iota
	// Output replaces the table's standard output with a file created (or
	// truncated) with owner-only permissions.
	Output
)

// ErrMissingPath is the error returned when a redirection names no file.
var ErrMissingPath = errors.New("no file to redirect into")

// Redirection is a scoped swap of one entry in a descriptor table. Restore
// puts the displaced stream back and closes the opened file. The owner must
// call Restore on every exit path once a Redirection exists, whether or not
// the command itself ran.
type Redirection struct {
	table *Stdio
	dir   Direction
	saved *os.File
	file  *os.File
}

// Redirect opens path and swaps it into the table for the given direction.
// On failure the table is left untouched.
func Redirect(table *Stdio, dir Direction, path string) (*Redirection, error) {
	if path == "" {
		return nil, ErrMissingPath
	}

	var file *os.File
	var err error
	if dir == Input {
		file, err = os.OpenFile(path, os.O_RDONLY, 0)
	} else {
		file, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	red := &Redirection{table: table, dir: dir, file: file}
	if dir == Input {
		red.saved = table.In
		table.In = file
	} else {
		red.saved = table.Out
		table.Out = file
	}

	return red, nil
}

// Restore undoes the swap and closes the opened file. It is safe to call on
// a nil receiver and more than once.
func (r *Redirection) Restore() error {
	if r == nil || r.file == nil {
		return nil
	}

	if r.dir == Input {
		r.table.In = r.saved
	} else {
		r.table.Out = r.saved
	}

	err := r.file.Close()
	r.file = nil
	return err
}
