package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Approval workflow violations
	CodeWorkflowNotConfigured      = "WORKFLOW_NOT_CONFIGURED"
	CodeSequentialApproval         = "SEQUENTIAL_APPROVAL_REQUIRED"
	CodeSelfApproval               = "SELF_APPROVAL_NOT_ALLOWED"
	CodeRoleMismatch               = "APPROVER_ROLE_MISMATCH"
	CodeMissingMandatoryValidation = "HR_VALIDATION_REQUIRED"
	CodeMissingActingOfficer       = "ACTING_OFFICER_REQUIRED"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
