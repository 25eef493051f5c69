package attendance

import "time"

type ClockInRequest struct {
	Notes *string `json:"notes"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	ClockInDate    string  `json:"clock_in_date"`
	ClockInTime    *string `json:"clock_in_time,omitempty"`
	ClockOutTime   *string `json:"clock_out_time,omitempty"`
	ClockInStatus  string  `json:"clock_in_status,omitempty"`
	ClockOutStatus *string `json:"clock_out_status,omitempty"`
	TotalHours     float64 `json:"total_hours"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
}

type SummaryRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

type SummaryResponse struct {
	StartDate         string               `json:"start_date"`
	EndDate           string               `json:"end_date"`
	Present           int                  `json:"present"`
	Absent            int                  `json:"absent"`
	Late              int                  `json:"late"`
	TotalEmployees    int                  `json:"total_employees"`
	PresentPercentage float64              `json:"present_percentage"`
	Days              []DaySummaryResponse `json:"days"`
}

type DaySummaryResponse struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
}

func mapToResponse(a AttendanceRecord) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID.String(),
		EmployeeID:    a.EmployeeID.String(),
		ClockInDate:   a.ClockInDate.Format("2006-01-02"),
		ClockInStatus: a.ClockInStatus,
		TotalHours:    a.TotalHours,
		Status:        a.Status,
		Notes:         a.Notes,
	}
	if a.ClockInTime != nil {
		v := a.ClockInTime.Format(time.RFC3339)
		resp.ClockInTime = &v
	}
	if a.ClockOutTime != nil {
		v := a.ClockOutTime.Format(time.RFC3339)
		resp.ClockOutTime = &v
	}
	resp.ClockOutStatus = a.ClockOutStatus
	return resp
}

func mapSummaryToResponse(s AttendanceSummary) SummaryResponse {
	resp := SummaryResponse{
		StartDate:         s.Start.Format("2006-01-02"),
		EndDate:           s.End.Format("2006-01-02"),
		Present:           s.Present,
		Absent:            s.Absent,
		Late:              s.Late,
		TotalEmployees:    s.TotalEmployees,
		PresentPercentage: s.PresentPercentage,
		Days:              make([]DaySummaryResponse, len(s.Days)),
	}
	for i, d := range s.Days {
		resp.Days[i] = DaySummaryResponse{
			Date:    d.Date.Format("2006-01-02"),
			Present: d.Present,
			Absent:  d.Absent,
			Late:    d.Late,
		}
	}
	return resp
}
