package parse

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every FormatError via errors.Is.
var ErrFormat = errors.New("format error")

// FormatError reports a value that does not fit the statement format.
type FormatError struct {
	Value  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%q): %v", e.Reason, e.Value, e.Err)
	}

	return fmt.Sprintf("%s (%q)", e.Reason, e.Value)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }
