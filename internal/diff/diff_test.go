package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnified(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Unified("a\nb\n", "a\nb\n"))

	d := Unified("a\nb\nc\n", "a\nx\nc\n")
	assert.Contains(t, d, "--- want")
	assert.Contains(t, d, "+++ got")
	assert.Contains(t, d, "\n-b\n")
	assert.Contains(t, d, "\n+x\n")
}

func TestColorize(t *testing.T) {
	t.Parallel()

	out := Colorize("@@ -1 +1 @@\n-b\n+x\n c")
	lines := strings.Split(out, "\n")
	assert.Equal(t, "@@ -1 +1 @@", lines[0])
	assert.Equal(t, "\033[1;91m-b\033[0m", lines[1])
	assert.Equal(t, "\033[1;92m+x\033[0m", lines[2])
	assert.Equal(t, " c", lines[3])
}

func TestIgnoreLineNumbers(t *testing.T) {
	t.Parallel()

	a := "  1class A\n  2   variable FIELD INT_SCALAR x\n"
	b := "  1class A\n  7   variable FIELD INT_SCALAR x\n"
	assert.NotEqual(t, a, b)
	assert.Equal(t, IgnoreLineNumbers(a), IgnoreLineNumbers(b))
	assert.Equal(t, "class A\n   variable FIELD INT_SCALAR x\n", IgnoreLineNumbers(a))

	assert.NotEqual(t,
		IgnoreLineNumbers("  1class A\n"),
		IgnoreLineNumbers("  1class B\n"))
}
