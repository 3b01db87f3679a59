package service

import "fmt"

// ValidationError marks client-caused failures (bad enum value, malformed
// date, inconsistent reorder set). The HTTP layer maps it to a 400 with the
// offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
