package parser_test

import (
	"strings"
	"testing"

	"github.com/ecklang/eckfront/internal/corpora"
	"github.com/ecklang/eckfront/parser"
	"github.com/ecklang/eckfront/printer"
)

// TestCorpus parses each file under testdata and compares the dump listing
// and the error text with the golden files next to it. Set ECKFRONT_REFRESH
// to a glob such as "**" to rewrite the golden files instead.
func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "ECKFRONT_REFRESH",
		Extension: "eck",
		Outputs: []corpora.Output{
			{Extension: "dump"},
			{Extension: "stderr.txt"},
		},
		Test: func(t *testing.T, path, text string) []string {
			t.Log(path)
			class, err := parser.Parse(path, strings.NewReader(text), nil)
			if err != nil {
				return []string{"", err.Error() + "\n"}
			}
			return []string{printer.String(class), ""}
		},
	}
	corpus.Run(t)
}
