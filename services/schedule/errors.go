package schedule

import "fmt"

// ValidationError reports a bad field in a scheduling request. Handlers map
// it to a 400 with the field name in the response body.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
