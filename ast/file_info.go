package ast

import (
	"fmt"
	"sort"
)

// FileInfo contains information about the contents of a source file. A
// scanner accumulates line boundaries as it reads the file, which allows
// offsets to be turned into line and column positions later.
type FileInfo struct {
	// The name of the source file.
	name string
	// The raw contents of the source file.
	data []byte
	// The offsets for each line in the file. The value at index 0 is the
	// offset of the first line (always zero), the value at index 1 is the
	// offset at which the second line begins, and so on.
	lines []int
}

// NewFileInfo creates a new instance for the given file.
func NewFileInfo(filename string, contents []byte) *FileInfo {
	return &FileInfo{
		name:  filename,
		data:  contents,
		lines: []int{0},
	}
}

// Name returns the file name.
func (f *FileInfo) Name() string {
	return f.name
}

// Data returns the raw contents of the file.
func (f *FileInfo) Data() []byte {
	return f.data
}

// LineCount returns the number of lines recorded so far.
func (f *FileInfo) LineCount() int {
	return len(f.lines)
}

// AddLine adds the offset representing the beginning of the "next" line in the file.
// The first line always starts at offset 0, the second line starts at offset-of-newline-char+1.
func (f *FileInfo) AddLine(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("invalid offset: %d must not be negative", offset))
	}
	if offset > len(f.data) {
		panic(fmt.Sprintf("invalid offset: %d is greater than file size %d", offset, len(f.data)))
	}
	if lastOffset := f.lines[len(f.lines)-1]; offset <= lastOffset {
		panic(fmt.Sprintf("invalid offset: %d is not greater than previously observed line offset %d", offset, lastOffset))
	}

	f.lines = append(f.lines, offset)
}

// SourcePos returns the position of the given offset. Only lines already
// added with AddLine are taken into account.
func (f *FileInfo) SourcePos(offset int) SourcePos {
	lineNumber := sort.Search(len(f.lines), func(n int) bool {
		return f.lines[n] > offset
	})

	col := 0
	for i := f.lines[lineNumber-1]; i < offset && i < len(f.data); i++ {
		if f.data[i] == '\t' {
			col += 8 - (col % 8)
		} else {
			col++
		}
	}

	return SourcePos{
		Filename: f.name,
		Offset:   offset,
		Line:     lineNumber,
		// Columns are 1-indexed.
		Col: col + 1,
	}
}

// LineOffset returns the byte offset at which the given 1-based line starts,
// or -1 for lines that were not recorded.
func (f *FileInfo) LineOffset(n int) int {
	if n <= 0 || n > len(f.lines) {
		return -1
	}
	return f.lines[n-1]
}

// Line returns the text of the given 1-based line, without its line
// terminator. It returns the empty string for lines that were not recorded.
func (f *FileInfo) Line(n int) string {
	if n <= 0 || n > len(f.lines) {
		return ""
	}
	start := f.lines[n-1]
	end := len(f.data)
	if n < len(f.lines) {
		end = f.lines[n] - 1
	}
	for i := start; i < end; i++ {
		if f.data[i] == '\n' {
			end = i
			break
		}
	}
	if end > start && f.data[end-1] == '\r' {
		end--
	}
	return string(f.data[start:end])
}

// SourcePos identifies a location in a source file.
type SourcePos struct {
	Filename  string
	Line, Col int
	Offset    int
}

// UnknownPos is a placeholder position when only the source file
// name is known.
func UnknownPos(filename string) SourcePos {
	return SourcePos{Filename: filename}
}

func (pos SourcePos) String() string {
	if pos.Line <= 0 || pos.Col <= 0 {
		return pos.Filename
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}
