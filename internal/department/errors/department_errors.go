package departmenterrors

import (
	"go-hrm/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
	)
	// Deleting a department that still has member links would orphan the
	// join rows, so it is refused instead of cascaded.
	ErrDepartmentInUse = apperror.New(
		apperror.CodeReferenced,
		"department still has linked employees",
	)
	ErrHeadNotMember = apperror.New(
		apperror.CodeInvalidInput,
		"head must be an employee linked to this department",
	)
)
