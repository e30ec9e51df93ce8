package events

import "time"

const (
	ApprovalRequiredTopic = "hr.leave.approval.required.v1"
	LeaveDecidedTopic     = "hr.leave.decided.v1"
)

// ApprovalRequiredEvent tells the notifier who has to act next.
type ApprovalRequiredEvent struct {
	EventType          string    `json:"event_type"`
	RequestID          string    `json:"request_id,omitempty"`
	LeaveID            string    `json:"leave_id"`
	ReferenceNumber    string    `json:"reference_number"`
	OrganizationID     string    `json:"organization_id"`
	RequesterStaffID   string    `json:"requester_staff_id"`
	Level              int       `json:"level"`
	ApproverRole       string    `json:"approver_role"`
	ApproverStaffID    string    `json:"approver_staff_id,omitempty"`
	ApproverName       string    `json:"approver_name,omitempty"`
	DelegatedToStaffID string    `json:"delegated_to_staff_id,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}

// LeaveDecidedEvent carries the terminal status; balance handling reacts to it.
type LeaveDecidedEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id,omitempty"`
	LeaveID          string    `json:"leave_id"`
	ReferenceNumber  string    `json:"reference_number"`
	OrganizationID   string    `json:"organization_id"`
	RequesterStaffID string    `json:"requester_staff_id"`
	LeaveType        string    `json:"leave_type"`
	Days             float64   `json:"days"`
	Status           string    `json:"status"`
	DecidedBy        string    `json:"decided_by"`
	OccurredAt       time.Time `json:"occurred_at"`
}
