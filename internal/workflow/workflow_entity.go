package workflow

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Definition is one version of a configurable approval chain. Versions of the
// same workflow share Name and OrganizationID; nil OrganizationID is global.
type Definition struct {
	ID                uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string                        `gorm:"type:varchar(150);not null;uniqueIndex:uq_workflow_name_version_org"`
	Description       string                        `gorm:"type:text"`
	Version           int                           `gorm:"not null;default:1;uniqueIndex:uq_workflow_name_version_org"`
	OrganizationID    *string                       `gorm:"type:varchar(64);uniqueIndex:uq_workflow_name_version_org;index:idx_workflow_org_active"`
	IsActive          bool                          `gorm:"not null;default:false;index:idx_workflow_org_active"`
	IsDefault         bool                          `gorm:"not null;default:false"`
	Conditions        datatypes.JSONType[Condition] `gorm:"type:jsonb"`
	CreatedBy         string                        `gorm:"type:varchar(64)"`
	PreviousVersionID *uuid.UUID                    `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Steps []Step `gorm:"foreignKey:WorkflowID;constraint:OnDelete:CASCADE"`
}

func (Definition) TableName() string {
	return "workflow_definitions"
}

func (d Definition) Scope() string {
	if d.OrganizationID == nil {
		return ""
	}
	return *d.OrganizationID
}

type Step struct {
	ID               uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkflowID       uuid.UUID                     `gorm:"type:uuid;not null;uniqueIndex:uq_workflow_step_order"`
	StepOrder        int                           `gorm:"not null;uniqueIndex:uq_workflow_step_order"`
	ApproverRole     string                        `gorm:"type:varchar(40);not null"`
	ApproverRoleType string                        `gorm:"type:varchar(60)"`
	IsRequired       bool                          `gorm:"not null;default:true"`
	CanSkip          bool                          `gorm:"not null;default:false"`
	CanDelegate      bool                          `gorm:"not null;default:true"`
	Conditions       datatypes.JSONType[Condition] `gorm:"type:jsonb"`
}

func (Step) TableName() string {
	return "workflow_steps"
}

// Match is a definition chosen for a request together with the steps that apply to it.
type Match struct {
	Definition Definition
	Steps      []Step
}
