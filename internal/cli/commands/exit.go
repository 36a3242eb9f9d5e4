package commands

import (
	"errors"
	"fmt"
)

// ExitError carries a process exit code. Silent errors have already been
// reported on the renderer, so main only sets the exit status.
type ExitError struct {
	Code   int
	Err    error
	Silent bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// silentExit returns an ExitError that prints nothing.
func silentExit(code int, err error) error {
	return &ExitError{Code: code, Err: err, Silent: true}
}

// errChecksFailed marks a run whose report contains failing findings.
var errChecksFailed = errors.New("documentation checks failed")

// errNeedsUpdate marks a check-only sync run with stale documentation.
var errNeedsUpdate = errors.New("documentation needs updating")
