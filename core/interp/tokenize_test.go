package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name          string
		line          string
		max           int
		wantTokens    []string
		wantTruncated bool
	}{
		{"empty", "", 40, []string{}, false},
		{"whitespace only", " \t  ", 40, []string{}, false},
		{"single", "ls", 40, []string{"ls"}, false},
		{"ordered", "echo a b c", 40, []string{"echo", "a", "b", "c"}, false},
		{"runs of whitespace", "  echo \t hello  ", 40, []string{"echo", "hello"}, false},
		{"operators kept verbatim", "cat < in.txt", 40, []string{"cat", "<", "in.txt"}, false},
		{"at the cap", "a b c", 3, []string{"a", "b", "c"}, false},
		{"over the cap", "a b c d e", 3, []string{"a", "b", "c"}, true},
		{"cap of one", "a b", 1, []string{"a"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, truncated := Split(tc.line, tc.max)

			assert.Equal(t, tc.wantTokens, tokens)
			assert.Equal(t, tc.wantTruncated, truncated)
		})
	}
}
