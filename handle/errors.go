package handle

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the file or directory does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyOpen indicates the handle already holds a descriptor
	ErrAlreadyOpen = errors.New("file already open")

	// ErrOpenFailed indicates the backend refused to open the file
	ErrOpenFailed = errors.New("unable to open file")

	// ErrWriteFailed indicates a backend write, remove or mkdir failed
	ErrWriteFailed = errors.New("backend write failed")

	// ErrDestinationExists indicates the target of a create or move exists
	ErrDestinationExists = errors.New("destination exists")
)

// Error wraps a failure with the operation and the path it concerned.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// cause attaches a backend error to one of the sentinel errors.
func cause(kind, err error) error {
	if err == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// fail logs the failure and returns it as an *Error.
func (h *Handle) fail(op, path string, err error) error {
	e := &Error{Op: op, Path: path, Err: err}
	h.logf("error: %v", e)
	return e
}
