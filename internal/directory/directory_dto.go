package directory

type EmployeeResponse struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	DepartmentID *string `json:"department_id,omitempty"`
	RoleName     string  `json:"role_name,omitempty"`
	TeamLeadID   *string `json:"team_lead_id,omitempty"`
	IsActive     bool    `json:"is_active"`
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:       e.ID.String(),
		FullName: e.FullName,
		RoleName: e.RoleName,
		IsActive: e.IsActive,
	}
	if e.DepartmentID != nil {
		v := e.DepartmentID.String()
		resp.DepartmentID = &v
	}
	if e.TeamLeadID != nil {
		v := e.TeamLeadID.String()
		resp.TeamLeadID = &v
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
