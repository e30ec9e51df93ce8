package approvalerrors

import (
	"net/http"

	"go-leave-approval/internal/shared/apperror"
)

var (
	ErrWorkflowNotConfigured = apperror.New(
		apperror.CodeWorkflowNotConfigured,
		"no approval workflow could be determined for this staff member",
		http.StatusUnprocessableEntity,
	)
	ErrSequentialApproval = apperror.New(
		apperror.CodeSequentialApproval,
		"previous approval levels must be completed first",
		http.StatusConflict,
	)
	ErrSelfApproval = apperror.New(
		apperror.CodeSelfApproval,
		"you cannot act on your own leave request",
		http.StatusForbidden,
	)
	ErrRoleMismatch = apperror.New(
		apperror.CodeRoleMismatch,
		"you are not the approver for this level",
		http.StatusForbidden,
	)
	ErrMissingMandatoryValidation = apperror.New(
		apperror.CodeMissingMandatoryValidation,
		"HR validation must be approved before final approval",
		http.StatusUnprocessableEntity,
	)
	ErrMissingActingOfficer = apperror.New(
		apperror.CodeMissingActingOfficer,
		"an acting officer must be assigned before final approval",
		http.StatusUnprocessableEntity,
	)
	ErrStepNotFound = apperror.New(
		apperror.CodeNotFound,
		"approval step not found",
		http.StatusNotFound,
	)
	ErrWorkflowClosed = apperror.New(
		apperror.CodeInvalidState,
		"approval workflow is closed",
		http.StatusConflict,
	)
	ErrStepNotActionable = apperror.New(
		apperror.CodeInvalidState,
		"approval step has already been acted on",
		http.StatusConflict,
	)
	ErrConcurrentUpdate = apperror.New(
		apperror.CodeConflict,
		"approval step was changed by another request",
		http.StatusConflict,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"invalid approval action",
		http.StatusBadRequest,
	)
	ErrSkipNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"this approval level cannot be skipped",
		http.StatusUnprocessableEntity,
	)
	ErrDelegationNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"this approval level cannot be delegated",
		http.StatusUnprocessableEntity,
	)
	ErrDelegateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"delegate staff id is required",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"rejection reason is required",
		http.StatusBadRequest,
	)
	ErrStepsAlreadyExist = apperror.New(
		apperror.CodeConflict,
		"approval steps already exist for this leave request",
		http.StatusConflict,
	)
	ErrInvalidLevels = apperror.New(
		apperror.CodeInvalidInput,
		"approval levels must be numbered 1..N without gaps",
		http.StatusBadRequest,
	)
	ErrDelegateNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"delegate staff member not found",
		http.StatusBadRequest,
	)
)
