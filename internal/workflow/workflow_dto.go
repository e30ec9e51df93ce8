package workflow

type StepRequest struct {
	StepOrder        int        `json:"step_order" binding:"required,min=1"`
	ApproverRole     string     `json:"approver_role" binding:"required"`
	ApproverRoleType string     `json:"approver_role_type"`
	IsRequired       *bool      `json:"is_required"`
	CanSkip          bool       `json:"can_skip"`
	CanDelegate      *bool      `json:"can_delegate"`
	Conditions       *Condition `json:"conditions"`
}

type CreateWorkflowRequest struct {
	Name        string        `json:"name" binding:"required,max=150"`
	Description string        `json:"description"`
	Version     int           `json:"version" binding:"omitempty,min=1"`
	Global      bool          `json:"global"`
	IsActive    bool          `json:"is_active"`
	IsDefault   bool          `json:"is_default"`
	Conditions  *Condition    `json:"conditions"`
	Steps       []StepRequest `json:"steps" binding:"required,min=1,dive"`
}

// CreateVersionRequest copies anything left empty from the base version.
type CreateVersionRequest struct {
	Description *string       `json:"description"`
	Conditions  *Condition    `json:"conditions"`
	Steps       []StepRequest `json:"steps" binding:"omitempty,dive"`
}

type StepResponse struct {
	ID               string     `json:"id"`
	StepOrder        int        `json:"step_order"`
	ApproverRole     string     `json:"approver_role"`
	ApproverRoleType string     `json:"approver_role_type,omitempty"`
	IsRequired       bool       `json:"is_required"`
	CanSkip          bool       `json:"can_skip"`
	CanDelegate      bool       `json:"can_delegate"`
	Conditions       *Condition `json:"conditions,omitempty"`
}

type WorkflowResponse struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	Version           int            `json:"version"`
	OrganizationID    *string        `json:"organization_id"`
	IsActive          bool           `json:"is_active"`
	IsDefault         bool           `json:"is_default"`
	Conditions        *Condition     `json:"conditions,omitempty"`
	CreatedBy         string         `json:"created_by"`
	PreviousVersionID *string        `json:"previous_version_id,omitempty"`
	CreatedAt         string         `json:"created_at"`
	Steps             []StepResponse `json:"steps"`
}
