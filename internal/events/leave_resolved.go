package events

import "time"

const LeaveResolvedTopic = "workforce.leave.v1"

type LeaveResolvedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID string    `json:"leave_request_id"`
	EmployeeID     string    `json:"employee_id"`
	RelievingStaff string    `json:"relieving_staff_id"`
	SupervisorID   *string   `json:"supervisor_id,omitempty"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	ResumptionDate string    `json:"resumption_date"`
	OccurredAt     time.Time `json:"occurred_at"`
}
