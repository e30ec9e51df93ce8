package approval

import "time"

type PreviewRequest struct {
	StaffID   string  `json:"staff_id" binding:"required"`
	LeaveType string  `json:"leave_type" binding:"required,oneof=Annual Sick Unpaid SpecialService Training Study Maternity Paternity Compassionate"`
	Days      float64 `json:"days" binding:"required,gt=0"`
}

type LevelResponse struct {
	Level                  int    `json:"level"`
	ApproverRole           string `json:"approver_role"`
	ApproverStaffID        string `json:"approver_staff_id,omitempty"`
	ApproverName           string `json:"approver_name,omitempty"`
	ActingFor              string `json:"acting_for,omitempty"`
	Status                 string `json:"status"`
	PreviousLevelCompleted bool   `json:"previous_level_completed"`
}

type PreviewResponse struct {
	StaffID            string          `json:"staff_id"`
	Source             string          `json:"source"`
	RuleName           string          `json:"rule_name,omitempty"`
	WorkflowID         string          `json:"workflow_id,omitempty"`
	WorkflowVersion    int             `json:"workflow_version,omitempty"`
	ChiefDirectorLeave bool            `json:"chief_director_leave"`
	Levels             []LevelResponse `json:"levels"`
}

type StepResponse struct {
	ID                     string     `json:"id"`
	Level                  int        `json:"level"`
	ApproverRole           string     `json:"approver_role"`
	ApproverStaffID        string     `json:"approver_staff_id,omitempty"`
	AssignedName           string     `json:"assigned_name,omitempty"`
	ActingFor              string     `json:"acting_for,omitempty"`
	Status                 string     `json:"status"`
	ApproverName           string     `json:"approver_name,omitempty"`
	ApprovalDate           *time.Time `json:"approval_date,omitempty"`
	Comments               string     `json:"comments,omitempty"`
	DelegatedTo            string     `json:"delegated_to,omitempty"`
	DelegatedToName        string     `json:"delegated_to_name,omitempty"`
	DelegationDate         *time.Time `json:"delegation_date,omitempty"`
	PreviousLevelCompleted bool       `json:"previous_level_completed"`
	CanSkip                bool       `json:"can_skip"`
	CanDelegate            bool       `json:"can_delegate"`
}

func MapToPreviewResponse(staffID string, sel Selection) PreviewResponse {
	resp := PreviewResponse{
		StaffID:            staffID,
		Source:             sel.Source,
		RuleName:           sel.RuleName,
		WorkflowVersion:    sel.WorkflowVersion,
		ChiefDirectorLeave: sel.ChiefDirectorLeave,
		Levels:             make([]LevelResponse, 0, len(sel.Levels)),
	}
	if sel.WorkflowID != nil {
		resp.WorkflowID = sel.WorkflowID.String()
	}
	for _, l := range sel.Levels {
		resp.Levels = append(resp.Levels, LevelResponse{
			Level:                  l.Level,
			ApproverRole:           l.ApproverRole.String(),
			ApproverStaffID:        l.ApproverStaffID,
			ApproverName:           l.ApproverName,
			ActingFor:              l.ActingFor,
			Status:                 string(l.Status),
			PreviousLevelCompleted: l.PreviousLevelCompleted,
		})
	}
	return resp
}

func MapToStepResponse(s ApprovalStep) StepResponse {
	return StepResponse{
		ID:                     s.ID.String(),
		Level:                  s.Level,
		ApproverRole:           s.ApproverRole,
		ApproverStaffID:        deref(s.ApproverStaffID),
		AssignedName:           deref(s.AssignedName),
		ActingFor:              deref(s.ActingFor),
		Status:                 string(s.Status),
		ApproverName:           deref(s.ApproverName),
		ApprovalDate:           s.ApprovalDate,
		Comments:               deref(s.Comments),
		DelegatedTo:            deref(s.DelegatedTo),
		DelegatedToName:        deref(s.DelegatedToName),
		DelegationDate:         s.DelegationDate,
		PreviousLevelCompleted: s.PreviousLevelCompleted,
		CanSkip:                s.CanSkip,
		CanDelegate:            s.CanDelegate,
	}
}

func MapToStepListResponse(steps []ApprovalStep) []StepResponse {
	out := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, MapToStepResponse(s))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
