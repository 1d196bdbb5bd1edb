package scanner

import (
	"fmt"
	"io"

	"github.com/ecklang/eckfront/token"
)

// WriteListing scans the rest of s's input and writes one line per token to
// w, ending with the EOF token. If scanning fails, the error's text is
// written as the last line and the error is returned.
func WriteListing(w io.Writer, s *Scanner) error {
	for {
		tok, err := s.Next()
		if err != nil {
			if _, werr := fmt.Fprintln(w, err); werr != nil {
				return werr
			}
			return err
		}
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			return nil
		}
	}
}
