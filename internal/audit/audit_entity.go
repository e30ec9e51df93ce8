package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TargetWorkflow     = "workflow_definition"
	TargetLeave        = "leave_request"
	TargetApprovalStep = "approval_step"
	TargetServer       = "server"
)

const (
	ActionWorkflowCreated        = "WORKFLOW_CREATED"
	ActionWorkflowVersionCreated = "WORKFLOW_VERSION_CREATED"
	ActionWorkflowActivated      = "WORKFLOW_ACTIVATED"
	ActionWorkflowDeactivated    = "WORKFLOW_DEACTIVATED"
	ActionWorkflowDefaultSet     = "WORKFLOW_DEFAULT_SET"
	ActionWorkflowDeleted        = "WORKFLOW_DELETED"

	ActionLeaveSubmitted = "LEAVE_SUBMITTED"
	ActionLeaveCancelled = "LEAVE_CANCELLED"
	ActionStepApproved   = "APPROVAL_STEP_APPROVED"
	ActionStepRejected   = "APPROVAL_STEP_REJECTED"
	ActionStepDelegated  = "APPROVAL_STEP_DELEGATED"
	ActionStepSkipped    = "APPROVAL_STEP_SKIPPED"

	ActionServerShutdown = "SERVER_SHUTDOWN"
)

// Actor identifies who performed an action, as carried in the access token.
type Actor struct {
	UserID         string
	StaffID        string
	OrganizationID string
	Role           string
	ApproverRole   string
	Email          string
	Name           string
}

// ID prefers the staff id, which is what approval steps record.
func (a Actor) ID() string {
	if a.StaffID != "" {
		return a.StaffID
	}
	return a.UserID
}

type Entry struct {
	ID             uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	OrganizationID string                                `gorm:"type:varchar(64);index:idx_audit_org_target"`
	ActorID        string                                `gorm:"type:varchar(64);not null"`
	ActorRole      string                                `gorm:"type:varchar(64)"`
	ActorEmail     string                                `gorm:"type:varchar(200)"`
	Action         string                                `gorm:"type:varchar(64);not null"`
	TargetType     string                                `gorm:"type:varchar(64);not null;index:idx_audit_org_target"`
	TargetID       string                                `gorm:"type:varchar(64);not null;index:idx_audit_org_target"`
	TargetName     string                                `gorm:"type:varchar(200)"`
	LeaveRequestID *string                               `gorm:"type:varchar(64);index"`
	StaffID        string                                `gorm:"type:varchar(50)"`
	Before         string                                `gorm:"type:text"`
	After          string                                `gorm:"type:text"`
	Details        datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	RequestID      string                                `gorm:"type:varchar(64)"`
	OccurredAt     time.Time                             `gorm:"not null;index"`
}

func (Entry) TableName() string {
	return "audit_logs"
}

// NewEntry fills the actor columns and a fresh id.
func NewEntry(actor Actor, action, targetType, targetID string) Entry {
	return Entry{
		ID:             uuid.New(),
		OrganizationID: actor.OrganizationID,
		ActorID:        actor.ID(),
		ActorRole:      firstNonEmpty(actor.ApproverRole, actor.Role),
		ActorEmail:     actor.Email,
		Action:         action,
		TargetType:     targetType,
		TargetID:       targetID,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func Details(values map[string]string) datatypes.JSONType[map[string]string] {
	return datatypes.NewJSONType(values)
}
