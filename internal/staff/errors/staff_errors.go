package stafferrors

import (
	"net/http"

	"go-leave-approval/internal/shared/apperror"
)

var (
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"staff not found",
		http.StatusNotFound,
	)
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid staff id",
		http.StatusBadRequest,
	)
	ErrActingAppointmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"no active acting appointment",
		http.StatusNotFound,
	)
)
