package reporter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/ecklang/eckfront/ast"
)

// TabstopWidth is the size tab stops are rendered as in snippets.
const TabstopWidth = 8

// Renderer formats errors for display to a user.
type Renderer struct {
	// If set, errors with a position are followed by the offending source
	// line and a caret pointing at the column.
	ShowSnippet bool
}

// Render writes err to w. info supplies the source text for snippets; it may
// be nil, in which case no snippet is shown.
func (r Renderer) Render(w io.Writer, err error, info *ast.FileInfo) error {
	if _, e := fmt.Fprintf(w, "error: %v\n", err); e != nil {
		return e
	}

	var ewp ErrorWithPos
	if !r.ShowSnippet || info == nil || !errors.As(err, &ewp) {
		return nil
	}
	pos := ewp.GetPosition()
	if pos.Line <= 0 || info.LineOffset(pos.Line) < 0 {
		return nil
	}

	line := info.Line(pos.Line)
	prefix := pos.Offset - info.LineOffset(pos.Line)
	if prefix < 0 || prefix > len(line) {
		prefix = len(line)
	}

	gutter := fmt.Sprintf("%4d | ", pos.Line)
	var b strings.Builder
	b.WriteString(gutter)
	expandTabs(&b, line)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", len(gutter)-2))
	b.WriteString("| ")
	b.WriteString(strings.Repeat(" ", displayWidth(line[:prefix])))
	b.WriteString("^\n")
	_, e := io.WriteString(w, b.String())
	return e
}

// RenderString is like Render, but returns the text.
func (r Renderer) RenderString(err error, info *ast.FileInfo) string {
	var b strings.Builder
	_ = r.Render(&b, err, info)
	return b.String()
}

// displayWidth returns the number of terminal cells text occupies when it
// starts at column zero.
func displayWidth(text string) int {
	var column int
	for {
		next, rest, haveTab := strings.Cut(text, "\t")
		column += uniseg.StringWidth(next)
		if !haveTab {
			return column
		}
		column += TabstopWidth - (column % TabstopWidth)
		text = rest
	}
}

func expandTabs(b *strings.Builder, text string) {
	var column int
	for {
		next, rest, haveTab := strings.Cut(text, "\t")
		b.WriteString(next)
		column += uniseg.StringWidth(next)
		if !haveTab {
			return
		}
		tab := TabstopWidth - (column % TabstopWidth)
		b.WriteString(strings.Repeat(" ", tab))
		column += tab
		text = rest
	}
}
