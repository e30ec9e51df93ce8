package staff

import (
	"time"

	"go-leave-approval/internal/orgrole"

	"github.com/google/uuid"
)

const (
	DutyStationHQ       = "HQ"
	DutyStationRegion   = "Region"
	DutyStationDistrict = "District"
	DutyStationAgency   = "Agency"
)

// StaffOrganizationalInfo is read from the employees table; this service never writes it.
type StaffOrganizationalInfo struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	StaffID        string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_employees_staff_id" json:"staff_id"`
	FullName       string    `gorm:"type:varchar(200)" json:"full_name"`
	Email          string    `gorm:"type:varchar(200)" json:"email"`

	DutyStation           string  `gorm:"type:varchar(20)" json:"duty_station"`
	Directorate           *string `gorm:"type:varchar(200)" json:"directorate,omitempty"`
	Division              *string `gorm:"type:varchar(200)" json:"division,omitempty"`
	Unit                  *string `gorm:"type:varchar(200);index" json:"unit,omitempty"`
	SubUnit               *string `gorm:"type:varchar(200)" json:"sub_unit,omitempty"`
	ImmediateSupervisorID *string `gorm:"type:varchar(50)" json:"immediate_supervisor_id,omitempty"`
	ManagerID             *string `gorm:"type:varchar(50)" json:"manager_id,omitempty"`
	Grade                 string  `gorm:"type:varchar(20)" json:"grade"`
	Position              string  `gorm:"type:varchar(200)" json:"position"`

	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StaffOrganizationalInfo) TableName() string {
	return "employees"
}

func (s StaffOrganizationalInfo) UnitName() string {
	return deref(s.Unit)
}

func (s StaffOrganizationalInfo) DirectorateName() string {
	return deref(s.Directorate)
}

// SupervisorID falls back to the manager when no immediate supervisor is recorded.
func (s StaffOrganizationalInfo) SupervisorID() string {
	if v := deref(s.ImmediateSupervisorID); v != "" {
		return v
	}
	return deref(s.ManagerID)
}

func (s StaffOrganizationalInfo) Profile() orgrole.Profile {
	return orgrole.Profile{
		Position:    s.Position,
		Grade:       s.Grade,
		Unit:        s.UnitName(),
		Directorate: s.DirectorateName(),
	}
}

// ActingAppointment hands StaffID's approval authority to ActingStaffID for a date range.
type ActingAppointment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	StaffID        string    `gorm:"type:varchar(50);not null;index:idx_acting_staff_dates" json:"staff_id"`
	ActingStaffID  string    `gorm:"type:varchar(50);not null" json:"acting_staff_id"`
	StartDate      time.Time `gorm:"type:date;not null;index:idx_acting_staff_dates" json:"start_date"`
	EndDate        time.Time `gorm:"type:date;not null;index:idx_acting_staff_dates" json:"end_date"`
	Reason         string    `gorm:"type:text" json:"reason"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func (ActingAppointment) TableName() string {
	return "acting_appointments"
}

// Covers reports whether the appointment is in force on the calendar day of on.
func (a ActingAppointment) Covers(on time.Time) bool {
	if !a.IsActive {
		return false
	}
	day := dateOnly(on)
	return !day.Before(dateOnly(a.StartDate)) && !day.After(dateOnly(a.EndDate))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
