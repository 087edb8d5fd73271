package contracterrors

import (
	"go-hrm/internal/shared/apperror"
)

var (
	ErrContractNotFound = apperror.New(
		apperror.CodeNotFound,
		"contract not found",
	)
	ErrContractTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"contract type not found",
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must be on or after start_date",
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not exist",
	)
	ErrContractTypeInUse = apperror.New(
		apperror.CodeReferenced,
		"contract type is referenced by existing contracts",
	)
)
