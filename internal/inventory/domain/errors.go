package domain

import (
	"errors"
	"fmt"
	"strings"
)

type FieldErrorCode string

const (
	CodeDuplicateNameInBatch    FieldErrorCode = "DUPLICATE_NAME_IN_BATCH"
	CodeDuplicateNameInDatabase FieldErrorCode = "DUPLICATE_NAME_IN_DATABASE"
	CodeInvalidType             FieldErrorCode = "INVALID_TYPE"
	CodeInvalidOption           FieldErrorCode = "INVALID_OPTION"
	CodeInvalidOptions          FieldErrorCode = "INVALID_OPTIONS"
	CodeRequired                FieldErrorCode = "REQUIRED"
	CodeNotFound                FieldErrorCode = "NOT_FOUND"
	CodeDuplicateID             FieldErrorCode = "DUPLICATE_ID_IN_BATCH"
)

var (
	ErrInstallationTypeIDRequired = errors.New("installation type ID is required")
	ErrNameRequired               = errors.New("name is required")
	ErrCodeRequired               = errors.New("code is required")
	ErrUnknownFieldType           = errors.New("unknown field type")
	ErrEnumWithoutOptions         = errors.New("enum field requires at least one option")
)

// FieldError describes a problem with a single named field. Field carries the
// path of the offending input, e.g. "schemas[2].name" or "capacity".
type FieldError struct {
	Field   string         `json:"field"`
	Code    FieldErrorCode `json:"code"`
	Message string         `json:"message"`
	Value   any            `json:"value,omitempty"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Code)
}

func NewFieldError(field string, code FieldErrorCode, message string, value any) *FieldError {
	return &FieldError{
		Field:   field,
		Code:    code,
		Message: message,
		Value:   value,
	}
}

// ValidationError aggregates every field problem found in one operation.
type ValidationError struct {
	Message string
	Errors  []FieldError
}

func NewValidationError(message string, errs []FieldError) *ValidationError {
	return &ValidationError{
		Message: message,
		Errors:  errs,
	}
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}

	details := make([]string, len(e.Errors))
	for i, fieldErr := range e.Errors {
		details[i] = fieldErr.Error()
	}

	return fmt.Sprintf("%s: %s", e.Message, strings.Join(details, "; "))
}

// HasCode reports whether any aggregated field error carries the given code.
func (e *ValidationError) HasCode(code FieldErrorCode) bool {
	for _, fieldErr := range e.Errors {
		if fieldErr.Code == code {
			return true
		}
	}
	return false
}

// ForField returns the field errors recorded for a given path.
func (e *ValidationError) ForField(field string) []FieldError {
	result := make([]FieldError, 0)
	for _, fieldErr := range e.Errors {
		if fieldErr.Field == field {
			result = append(result, fieldErr)
		}
	}
	return result
}
