// Package diff produces the unified diffs shown when a golden file or a
// fixture answer does not match what was produced.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// LinePrefix is the width of the line-number column at the start of every
// line of a dump listing.
const LinePrefix = 3

// Unified returns a unified diff from want to got, or the empty string if
// they are equal.
func Unified(want, got string) string {
	if want == got {
		return ""
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}

// Colorize highlights the added and removed lines of a unified diff for a
// terminal.
func Colorize(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "+"):
			lines[i] = "\033[1;92m" + s + "\033[0m"
		case strings.HasPrefix(s, "-"):
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

// IgnoreLineNumbers strips the line-number column from each line of a dump
// listing, so that two listings can be compared on structure alone. Lines
// shorter than the column are dropped to the empty string.
func IgnoreLineNumbers(listing string) string {
	lines := strings.Split(listing, "\n")
	for i, s := range lines {
		if len(s) <= LinePrefix {
			lines[i] = ""
			continue
		}
		lines[i] = s[LinePrefix:]
	}
	return strings.Join(lines, "\n")
}
