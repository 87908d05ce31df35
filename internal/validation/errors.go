// Package validation checks résumé data: advisory completeness warnings and
// input-layer field limits.
package validation

import "fmt"

// InputError represents a rejected edit of a single form field
type InputError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input error: %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("input error: %s: %s", e.Field, e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
