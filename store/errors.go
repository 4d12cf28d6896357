package store

import "fmt"

// PersistenceError reports a failed flush of the history snapshot. The
// in-memory mutation that triggered the flush has already been applied.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting history on %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
