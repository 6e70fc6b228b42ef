package catalog

import "fmt"

// LoadError reports a catalog file that could not be read, parsed, or
// validated.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load failed: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
