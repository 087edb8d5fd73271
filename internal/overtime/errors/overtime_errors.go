package overtimeerrors

import (
	"go-hrm/internal/shared/apperror"
)

var (
	ErrOvertimeNotFound = apperror.New(
		apperror.CodeNotFound,
		"overtime not found",
	)
	ErrOvertimeTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"overtime type not found",
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected HH:MM",
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_time must be before end_time",
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not exist",
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"department does not exist",
	)
	ErrEmployeeNotInDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"employee is not linked to this department",
	)
	ErrOvertimeTypeInUse = apperror.New(
		apperror.CodeReferenced,
		"overtime type is referenced by existing overtimes",
	)
)
