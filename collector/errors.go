package collector

import "fmt"

// ReadError means a metric source could not be read or parsed this tick.
// It only affects the indicator that asked for it.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func readErr(source string, err error) error {
	return &ReadError{Source: source, Err: err}
}
