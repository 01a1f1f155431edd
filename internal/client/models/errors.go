package models

import "fmt"

// ValidationError reports a request field that failed client-side checks.
// These are raised before any network traffic happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
