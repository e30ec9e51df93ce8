package events

import "time"

const AuditRecordedTopic = "hr.leave.audit.v1"

type AuditRecordedEvent struct {
	EventType      string            `json:"event_type"`
	RequestID      string            `json:"request_id,omitempty"`
	EntryID        string            `json:"entry_id"`
	OrganizationID string            `json:"organization_id"`
	ActorID        string            `json:"actor_id"`
	ActorRole      string            `json:"actor_role"`
	ActorEmail     string            `json:"actor_email"`
	Action         string            `json:"action"`
	TargetType     string            `json:"target_type"`
	TargetID       string            `json:"target_id"`
	TargetName     string            `json:"target_name,omitempty"`
	LeaveRequestID string            `json:"leave_request_id,omitempty"`
	StaffID        string            `json:"staff_id,omitempty"`
	Before         string            `json:"before,omitempty"`
	After          string            `json:"after,omitempty"`
	Details        map[string]string `json:"details,omitempty"`
	OccurredAt     time.Time         `json:"occurred_at"`
}
