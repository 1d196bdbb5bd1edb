// Package reporter contains the types used for reporting errors from the
// scanner and parser. Every error carries the position in the source file
// where it was detected.
package reporter

import (
	"errors"
	"sync"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, compilation aborts with that error, including for
// files that have not been parsed yet. If the reporter returns nil, other
// files in the same compilation are still parsed. The file in which the error
// occurred is always abandoned: there is no error recovery within a file.
type ErrorReporter func(err ErrorWithPos) error

// Reporter observes errors as they occur.
type Reporter interface {
	Error(ErrorWithPos) error
}

// NewReporter creates a Reporter that calls the given function. A nil
// function reports every error by returning it, which fails the compilation
// on the first error.
func NewReporter(errs ErrorReporter) Reporter {
	return reporterFunc(errs)
}

type reporterFunc ErrorReporter

func (r reporterFunc) Error(err ErrorWithPos) error {
	if r == nil {
		return err
	}
	return r(err)
}

// Handler funnels the errors of one compilation into a Reporter. It is safe
// for concurrent use by the goroutines parsing different files.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a handler that reports to rep. A nil rep fails on the
// first error.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil)
	}
	return &Handler{reporter: rep}
}

// HandleError reports err. Errors without a source position are not passed
// to the reporter and become the handler's error as-is. The return value is
// non-nil if the compilation should stop.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	var ewp ErrorWithPos
	if errors.As(err, &ewp) {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// Error returns the overall result of the compilation: nil if nothing went
// wrong, the reporter's error if it returned one, or ErrInvalidSource if
// errors were reported but the reporter let them pass.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error returned by the reporter, if any. Once it
// is non-nil no further files should be parsed.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
