package auditerrors

import (
	"net/http"

	"go-leave-approval/internal/shared/apperror"
)

var (
	ErrInvalidTargetID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid audit target id",
		http.StatusBadRequest,
	)
	ErrInvalidEntry = apperror.New(
		apperror.CodeInvalidInput,
		"audit entry requires action, target and actor",
		http.StatusBadRequest,
	)
)
