package timekeepingerrors

import (
	"go-hrm/internal/shared/apperror"
)

var (
	ErrWorkShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"work shift not found",
	)
	ErrTimeEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"time entry not found",
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
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
	ErrWorkShiftInUse = apperror.New(
		apperror.CodeReferenced,
		"work shift is referenced by existing time entries",
	)
)
