package resolver

import (
	"errors"
	"fmt"
)

// Kind classifies a rejected request.
type Kind string

const (
	KindValidation          Kind = "VALIDATION"
	KindConstraintViolation Kind = "CONSTRAINT_VIOLATION"
)

const CodePaginationConstraintViolation = "PAGINATION_CONSTRAINT_VIOLATION"

// ConstraintError tells the caller which field to fix and what shape it expects.
type ConstraintError struct {
	Kind     Kind
	Code     string
	Field    string
	Expected string
	Message  string
}

func (e *ConstraintError) Error() string {
	code := e.Code
	if code == "" {
		code = string(e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", code, e.Field, e.Message)
}

// NewValidationError reports a malformed field.
func NewValidationError(field, expected, msg string) *ConstraintError {
	return &ConstraintError{Kind: KindValidation, Code: string(KindValidation), Field: field, Expected: expected, Message: msg}
}

var ErrIllegalTransition = errors.New("illegal resolution state transition")
