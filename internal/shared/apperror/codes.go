package apperror

const (
	// Business-rule failures (recoverable no-ops)
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeReferenced   = "REFERENCED"
	CodeInvalidState = "INVALID_STATE"

	// Unexpected failures
	CodeInternalError = "INTERNAL_ERROR"
)
