package parse

import (
	"time"
)

// Date parses value with each layout in turn and returns the first success.
func Date(value string, layouts ...string) (time.Time, error) {
	var lastErr error

	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}

		lastErr = err
	}

	return time.Time{}, &FormatError{Value: value, Reason: "invalid date", Err: lastErr}
}
