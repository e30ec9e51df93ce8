package leave

import "go-leave-approval/internal/approval"

type SubmitLeaveRequest struct {
	LeaveType         string  `json:"leave_type" binding:"required,oneof=Annual Sick Unpaid SpecialService Training Study Maternity Paternity Compassionate"`
	StartDate         string  `json:"start_date" binding:"required"`
	EndDate           string  `json:"end_date" binding:"required"`
	Days              float64 `json:"days" binding:"omitempty,gt=0"`
	Reason            string  `json:"reason"`
	OfficerTakingOver string  `json:"officer_taking_over"`
	HandoverNotes     string  `json:"handover_notes"`
}

type ActionRequest struct {
	Level    int    `json:"level" binding:"required,gte=1"`
	Comments string `json:"comments"`
}

type DelegateRequest struct {
	Level      int    `json:"level" binding:"required,gte=1"`
	DelegateTo string `json:"delegate_to" binding:"required"`
	Comments   string `json:"comments"`
}

type LeaveResponse struct {
	ID                   string                  `json:"id"`
	OrganizationID       string                  `json:"organization_id"`
	ReferenceNumber      string                  `json:"reference_number"`
	StaffID              string                  `json:"staff_id"`
	LeaveType            string                  `json:"leave_type"`
	StartDate            string                  `json:"start_date"`
	EndDate              string                  `json:"end_date"`
	Days                 float64                 `json:"days"`
	Reason               string                  `json:"reason"`
	OfficerTakingOver    *string                 `json:"officer_taking_over,omitempty"`
	HandoverNotes        *string                 `json:"handover_notes,omitempty"`
	Status               string                  `json:"status"`
	WorkflowSource       string                  `json:"workflow_source"`
	WorkflowRule         string                  `json:"workflow_rule,omitempty"`
	WorkflowDefinitionID *string                 `json:"workflow_definition_id,omitempty"`
	ChiefDirectorLeave   bool                    `json:"chief_director_leave"`
	CreatedBy            string                  `json:"created_by"`
	CreatedAt            string                  `json:"created_at"`
	ApprovedAt           *string                 `json:"approved_at,omitempty"`
	CancelledAt          *string                 `json:"cancelled_at,omitempty"`
	NextApprovers        []approval.StepResponse `json:"next_approvers,omitempty"`
	Steps                []approval.StepResponse `json:"steps,omitempty"`
}

type PendingApprovalResponse struct {
	LeaveID         string                `json:"leave_id"`
	ReferenceNumber string                `json:"reference_number"`
	StaffID         string                `json:"staff_id"`
	LeaveType       string                `json:"leave_type"`
	StartDate       string                `json:"start_date"`
	EndDate         string                `json:"end_date"`
	Days            float64               `json:"days"`
	Step            approval.StepResponse `json:"step"`
}
