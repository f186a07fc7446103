package skill

import "fmt"

// NotFoundError indicates that a skill directory has no SKILL.md descriptor.
type NotFoundError struct {
	Dir string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("SKILL.md not found in %s", e.Dir)
}

// ParseError indicates that a SKILL.md document is malformed: the
// frontmatter delimiter is missing or unclosed, or the YAML does not decode.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ValidationError indicates that skill properties violate one or more
// rules. Errors holds every individual violation in check order.
type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// newValidationError builds a ValidationError from a single violation.
func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Errors: []string{message}}
}
