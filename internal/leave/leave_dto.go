package leave

import "time"

type CreateLeaveRequest struct {
	EmployeeID       string `json:"employee_id" binding:"required,uuid"`
	RelievingStaffID string `json:"relieving_staff_id" binding:"required,uuid"`
	LeaveType        string `json:"leave_type" binding:"required,oneof=ANNUAL SICK COMPASSIONATE MATERNITY"`
	StartDate        string `json:"start_date" binding:"required"`
	EndDate          string `json:"end_date" binding:"required"`
	// ResumptionDate is accepted for wire compatibility and ignored; the
	// stored value is always derived from end_date.
	ResumptionDate string `json:"resumption_date"`
	Reason         string `json:"reason"`
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason" binding:"required"`
}

type LeaveResponse struct {
	ID               string  `json:"id"`
	ReferenceNumber  string  `json:"reference_number"`
	EmployeeID       string  `json:"employee_id"`
	LeaveType        string  `json:"leave_type"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	ResumptionDate   string  `json:"resumption_date"`
	TotalDays        int     `json:"total_days"`
	Reason           string  `json:"reason"`
	RelievingStaffID string  `json:"relieving_staff_id"`
	SupervisorID     *string `json:"supervisor_id,omitempty"`
	Status           string  `json:"status"`
	CreatedBy        string  `json:"created_by"`
	ApprovedBy       *string `json:"approved_by,omitempty"`
	ApprovedAt       *string `json:"approved_at,omitempty"`
	RejectionReason  *string `json:"rejection_reason,omitempty"`
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:               l.ID.String(),
		ReferenceNumber:  l.ReferenceNumber,
		EmployeeID:       l.EmployeeID.String(),
		LeaveType:        l.LeaveType,
		StartDate:        l.StartDate.Format("2006-01-02"),
		EndDate:          l.EndDate.Format("2006-01-02"),
		ResumptionDate:   l.ResumptionDate.Format("2006-01-02"),
		TotalDays:        l.TotalDays,
		Reason:           l.Reason,
		RelievingStaffID: l.RelievingStaffID.String(),
		Status:           l.Status,
		CreatedBy:        l.CreatedBy.String(),
	}
	if l.SupervisorID != nil {
		v := l.SupervisorID.String()
		resp.SupervisorID = &v
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	resp.RejectionReason = l.RejectionReason
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
