package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusRecorded  = "recorded"
	StatusCancelled = "cancelled"
)

const (
	TypeAnnual         = "Annual"
	TypeSick           = "Sick"
	TypeUnpaid         = "Unpaid"
	TypeSpecialService = "SpecialService"
	TypeTraining       = "Training"
	TypeStudy          = "Study"
	TypeMaternity      = "Maternity"
	TypePaternity      = "Paternity"
	TypeCompassionate  = "Compassionate"
)

const referencePrefix = "LV-"

type LeaveRequest struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_org_status;uniqueIndex:uq_leave_requests_reference"`
	ReferenceNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_leave_requests_reference"`
	StaffID         string    `gorm:"type:varchar(50);not null;index:idx_leave_requests_staff_dates"`

	LeaveType         string    `gorm:"type:varchar(30);not null;default:'Annual'"`
	StartDate         time.Time `gorm:"type:date;not null;index:idx_leave_requests_staff_dates"`
	EndDate           time.Time `gorm:"type:date;not null;index:idx_leave_requests_staff_dates"`
	Days              float64   `gorm:"type:numeric(5,1);not null;default:1"`
	Reason            string    `gorm:"type:text"`
	OfficerTakingOver *string   `gorm:"type:varchar(50)"`
	HandoverNotes     *string   `gorm:"type:text"`

	Status               string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_leave_requests_org_status"`
	WorkflowSource       string     `gorm:"type:varchar(20);not null"`
	WorkflowRule         string     `gorm:"type:varchar(50)"`
	WorkflowDefinitionID *uuid.UUID `gorm:"type:uuid"`
	WorkflowVersion      int        `gorm:"not null;default:0"`
	ChiefDirectorLeave   bool       `gorm:"not null;default:false"`
	CreatedBy            string     `gorm:"type:varchar(64);not null"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ApprovedAt  *time.Time
	CancelledAt *time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index:idx_leave_requests_deleted_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// HasOfficerTakingOver reports whether the requester named someone to cover the post.
func (l LeaveRequest) HasOfficerTakingOver() bool {
	return l.OfficerTakingOver != nil && *l.OfficerTakingOver != ""
}

func ValidLeaveType(t string) bool {
	switch t {
	case TypeAnnual, TypeSick, TypeUnpaid, TypeSpecialService, TypeTraining,
		TypeStudy, TypeMaternity, TypePaternity, TypeCompassionate:
		return true
	}
	return false
}
