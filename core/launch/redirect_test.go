package launch

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStdio(t *testing.T) *Stdio {
	t.Helper()

	dir := t.TempDir()
	in, err := os.Open(os.DevNull)
	require.NoError(t, err)
	t.Cleanup(func() { in.Close() })

	out, err := os.Create(filepath.Join(dir, "stdout"))
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })

	stderr, err := os.Create(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	t.Cleanup(func() { stderr.Close() })

	return &Stdio{In: in, Out: out, Err: stderr}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(contents)
}

func TestRedirect_MissingPath(t *testing.T) {
	table := testStdio(t)
	origIn, origOut := table.In, table.Out

	_, err := Redirect(table, Input, "")

	assert.ErrorIs(t, err, ErrMissingPath)
	assert.Same(t, origIn, table.In)
	assert.Same(t, origOut, table.Out)
}

func TestRedirect_InputMissingFile(t *testing.T) {
	table := testStdio(t)
	origIn := table.In

	_, err := Redirect(table, Input, filepath.Join(t.TempDir(), "missing.txt"))

	assert.Error(t, err)
	assert.Same(t, origIn, table.In)
}

func TestRedirect_Input(t *testing.T) {
	table := testStdio(t)
	origIn := table.In

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0600))

	red, err := Redirect(table, Input, path)
	require.NoError(t, err)

	contents, err := io.ReadAll(table.In)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(contents))

	assert.NoError(t, red.Restore())
	assert.Same(t, origIn, table.In)
}

func TestRedirect_OutputTruncates(t *testing.T) {
	table := testStdio(t)
	origOut := table.Out
	path := filepath.Join(t.TempDir(), "out.txt")

	red, err := Redirect(table, Output, path)
	require.NoError(t, err)
	_, err = table.Out.WriteString("first, longer write\n")
	require.NoError(t, err)
	require.NoError(t, red.Restore())
	assert.Same(t, origOut, table.Out)

	// A second redirection to the same path truncates, it never appends.
	red, err = Redirect(table, Output, path)
	require.NoError(t, err)
	_, err = table.Out.WriteString("second\n")
	require.NoError(t, err)
	require.NoError(t, red.Restore())

	assert.Equal(t, "second\n", readFile(t, path))
}

func TestRedirection_RestoreIdempotent(t *testing.T) {
	table := testStdio(t)
	origOut := table.Out

	red, err := Redirect(table, Output, filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)

	assert.NoError(t, red.Restore())
	assert.NoError(t, red.Restore())
	assert.Same(t, origOut, table.Out)
}

func TestRedirection_RestoreNil(t *testing.T) {
	var red *Redirection
	assert.NoError(t, red.Restore())
}
