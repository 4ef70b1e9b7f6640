package internal

import "inventory-server/internal/inventory/domain"

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

type ValidationErrorResponse struct {
	Message string               `json:"message"`
	Errors  []FieldErrorResponse `json:"errors"`
}

func ToFieldErrorResponse(fieldErr domain.FieldError) FieldErrorResponse {
	return FieldErrorResponse{
		Field:   fieldErr.Field,
		Code:    string(fieldErr.Code),
		Message: fieldErr.Message,
		Value:   fieldErr.Value,
	}
}

func ToValidationErrorResponse(validationErr *domain.ValidationError) ValidationErrorResponse {
	errs := make([]FieldErrorResponse, len(validationErr.Errors))
	for i, fieldErr := range validationErr.Errors {
		errs[i] = ToFieldErrorResponse(fieldErr)
	}
	return ValidationErrorResponse{Message: validationErr.Message, Errors: errs}
}
