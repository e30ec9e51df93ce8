package approval

import (
	"time"

	"go-leave-approval/internal/orgrole"

	"github.com/google/uuid"
)

type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepApproved  StepStatus = "approved"
	StepRejected  StepStatus = "rejected"
	StepDelegated StepStatus = "delegated"
	StepSkipped   StepStatus = "skipped"
)

// Resolved reports whether the step no longer blocks later levels.
func (s StepStatus) Resolved() bool {
	return s == StepApproved || s == StepSkipped
}

// AwaitingAction reports whether someone can still act on the step.
func (s StepStatus) AwaitingAction() bool {
	return s == StepPending || s == StepDelegated
}

// Level is one approval level chosen for a request before it is persisted.
type Level struct {
	Level                  int          `json:"level"`
	ApproverRole           orgrole.Role `json:"approver_role"`
	ApproverStaffID        string       `json:"approver_staff_id,omitempty"`
	ApproverName           string       `json:"approver_name,omitempty"`
	ActingFor              string       `json:"acting_for,omitempty"`
	Status                 StepStatus   `json:"status"`
	PreviousLevelCompleted bool         `json:"previous_level_completed"`
	IsRequired             bool         `json:"is_required"`
	CanSkip                bool         `json:"can_skip"`
	CanDelegate            bool         `json:"can_delegate"`
}

// ApprovalStep is the persisted state of one level of a leave request.
// ApproverName, ApprovalDate and Comments are only set once the level is
// approved or rejected; Delegated* fields only while it is delegated.
type ApprovalStep struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveRequestID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_leave_step_level"`
	Level                  int        `gorm:"not null;uniqueIndex:uq_leave_step_level"`
	ApproverRole           string     `gorm:"type:varchar(40);not null;index:idx_steps_role_status"`
	ApproverStaffID        *string    `gorm:"type:varchar(50);index"`
	AssignedName           *string    `gorm:"type:varchar(200)"`
	ActingFor              *string    `gorm:"type:varchar(50)"`
	Status                 StepStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_steps_role_status"`
	ApproverName           *string    `gorm:"type:varchar(200)"`
	ApprovalDate           *time.Time
	Comments               *string    `gorm:"type:text"`
	DelegatedTo            *string    `gorm:"type:varchar(50);index"`
	DelegatedToName        *string    `gorm:"type:varchar(200)"`
	DelegationDate         *time.Time
	PreviousLevelCompleted bool       `gorm:"not null;default:false"`
	IsRequired             bool       `gorm:"not null;default:true"`
	CanSkip                bool       `gorm:"not null;default:false"`
	CanDelegate            bool       `gorm:"not null;default:true"`
	ActedBy                *string    `gorm:"type:varchar(50)"`
	Version                int        `gorm:"not null;default:1"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (ApprovalStep) TableName() string {
	return "leave_approval_steps"
}

func (s ApprovalStep) Role() orgrole.Role {
	return orgrole.Role(s.ApproverRole)
}

// AssignedTo is the staff member currently expected to act: the delegate
// while delegated, otherwise the resolved approver.
func (s ApprovalStep) AssignedTo() string {
	if s.Status == StepDelegated && s.DelegatedTo != nil {
		return *s.DelegatedTo
	}
	if s.ApproverStaffID != nil {
		return *s.ApproverStaffID
	}
	return ""
}

// Selection is the chain chosen for a request and where it came from.
type Selection struct {
	Levels             []Level    `json:"levels"`
	Source             string     `json:"source"`
	RuleName           string     `json:"rule_name,omitempty"`
	WorkflowID         *uuid.UUID `json:"workflow_id,omitempty"`
	WorkflowVersion    int        `json:"workflow_version,omitempty"`
	ChiefDirectorLeave bool       `json:"chief_director_leave"`
}

const (
	SourceCatalogue = "catalogue"
	SourceFallback  = "fallback"
)
