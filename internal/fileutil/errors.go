package fileutil

import "fmt"

// ReadError reports a failure to open or read a file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failure during one step of a write operation.
// Step names the stage (e.g. "sync staging", "rename staging") so the
// top-level reporter can say exactly where the write died.
type WriteError struct {
	Path string
	Step string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Step, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
