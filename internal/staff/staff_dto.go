package staff

type OrgInfoResponse struct {
	StaffID               string   `json:"staff_id"`
	FullName              string   `json:"full_name"`
	Email                 string   `json:"email,omitempty"`
	Position              string   `json:"position"`
	Grade                 string   `json:"grade"`
	DutyStation           string   `json:"duty_station,omitempty"`
	Directorate           string   `json:"directorate,omitempty"`
	Division              string   `json:"division,omitempty"`
	Unit                  string   `json:"unit,omitempty"`
	SubUnit               string   `json:"sub_unit,omitempty"`
	ImmediateSupervisorID string   `json:"immediate_supervisor_id,omitempty"`
	ManagerID             string   `json:"manager_id,omitempty"`
	Roles                 []string `json:"roles"`
	RequiresActingOfficer bool     `json:"requires_acting_officer"`
}

type ActingAppointmentResponse struct {
	StaffID       string `json:"staff_id"`
	ActingStaffID string `json:"acting_staff_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Reason        string `json:"reason,omitempty"`
}
