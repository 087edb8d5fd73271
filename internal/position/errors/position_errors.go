package positionerrors

import (
	"go-hrm/internal/shared/apperror"
)

var ErrPositionNotFound = apperror.New(
	apperror.CodeNotFound,
	"position not found",
)
