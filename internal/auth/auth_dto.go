package auth

type MeResponse struct {
	UserID         string   `json:"user_id"`
	StaffID        string   `json:"staff_id"`
	OrganizationID string   `json:"organization_id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           string   `json:"role"`
	ApproverRole   string   `json:"approver_role,omitempty"`
	Position       string   `json:"position,omitempty"`
	Unit           string   `json:"unit,omitempty"`
	ApproverRoles  []string `json:"approver_roles"`
}
