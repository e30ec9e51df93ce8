package workflowerrors

import (
	"net/http"

	"go-leave-approval/internal/shared/apperror"
)

var (
	ErrWorkflowNotFound = apperror.New(
		apperror.CodeNotFound,
		"workflow definition not found",
		http.StatusNotFound,
	)
	ErrInvalidWorkflowID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid workflow id",
		http.StatusBadRequest,
	)
	ErrDuplicateWorkflow = apperror.New(
		apperror.CodeConflict,
		"a workflow with this name and version already exists",
		http.StatusConflict,
	)
	ErrInvalidCondition = apperror.New(
		apperror.CodeInvalidInput,
		"invalid workflow condition",
		http.StatusBadRequest,
	)
	ErrInvalidStep = apperror.New(
		apperror.CodeInvalidInput,
		"workflow steps must use known approver roles and unique step orders",
		http.StatusBadRequest,
	)
	ErrNoSteps = apperror.New(
		apperror.CodeInvalidInput,
		"workflow needs at least one step",
		http.StatusBadRequest,
	)
	ErrDefaultMustBeActive = apperror.New(
		apperror.CodeInvalidState,
		"only an active workflow can be the default",
		http.StatusUnprocessableEntity,
	)
	ErrActiveWorkflowDelete = apperror.New(
		apperror.CodeInvalidState,
		"deactivate the workflow before deleting it",
		http.StatusUnprocessableEntity,
	)
)
