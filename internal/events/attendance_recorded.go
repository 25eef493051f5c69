package events

import "time"

const AttendanceRecordedTopic = "workforce.attendance.v1"

type AttendanceRecordedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	AttendanceID  string    `json:"attendance_id"`
	EmployeeID    string    `json:"employee_id"`
	ClockInDate   string    `json:"clock_in_date"`
	Direction     string    `json:"direction"`
	ClockStatus   string    `json:"clock_status"`
	OverallStatus string    `json:"overall_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
