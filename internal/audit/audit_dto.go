package audit

type EntryResponse struct {
	ID             string            `json:"id"`
	ActorID        string            `json:"actor_id"`
	ActorRole      string            `json:"actor_role,omitempty"`
	ActorEmail     string            `json:"actor_email,omitempty"`
	Action         string            `json:"action"`
	TargetType     string            `json:"target_type"`
	TargetID       string            `json:"target_id"`
	TargetName     string            `json:"target_name,omitempty"`
	LeaveRequestID string            `json:"leave_request_id,omitempty"`
	StaffID        string            `json:"staff_id,omitempty"`
	Before         string            `json:"before,omitempty"`
	After          string            `json:"after,omitempty"`
	Details        map[string]string `json:"details,omitempty"`
	OccurredAt     string            `json:"occurred_at"`
}
