// Package templates normalizes the long help and example text of commands,
// after the pattern kubectl uses for its command help.
package templates

import (
	"strings"

	"github.com/MakeNowJust/heredoc"
)

const indent = "  "

// LongDesc normalizes a command's long description: the common leading
// indentation of the heredoc is stripped and surrounding whitespace trimmed.
func LongDesc(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.TrimSpace(heredoc.Doc(s))
}

// Examples normalizes a command's example block and indents every line the
// way cobra renders examples.
func Examples(s string) string {
	if len(s) == 0 {
		return s
	}
	trimmed := strings.TrimSpace(heredoc.Doc(s))
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
