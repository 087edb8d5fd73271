package employeeerrors

import (
	"go-hrm/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"linked department does not exist",
	)
	ErrPositionNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"linked position does not exist",
	)
	// A contract is a legal document, so a live one blocks deletion while
	// the employee's operational records (links, leaves, overtimes,
	// time entries) cascade.
	ErrEmployeeHasContracts = apperror.New(
		apperror.CodeReferenced,
		"employee still has contracts on file",
	)
)
