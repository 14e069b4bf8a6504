package interp

import "strings"

// DefaultMaxArgs bounds the number of tokens taken from a single line.
const DefaultMaxArgs = 40

// Split breaks line into at most max whitespace-delimited tokens. Tokens are
// kept verbatim, in their original order; runs of whitespace delimit them.
// truncated reports that segments beyond the cap were dropped. Zero tokens
// is a valid result for empty or whitespace-only input.
func Split(line string, max int) (tokens []string, truncated bool) {
	fields := strings.Fields(line)
	if max >= 0 && len(fields) > max {
		return fields[:max], true
	}
	return fields, false
}
