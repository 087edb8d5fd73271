package apperror

import "fmt"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
	)
)

// RequiredField reports a missing required field by its human-readable name
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field))
}

// InvalidField reports a field that failed validation by its human-readable name
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field))
}
