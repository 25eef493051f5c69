package attendance

import (
	"math"
	"time"

	attendanceerrors "go-workforce/internal/attendance/errors"
	"go-workforce/internal/schedule"

	"github.com/google/uuid"
)

// Clock event direction.
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// ClockEvent is a raw punch: who, when, which direction. Classification
// against the shift window happens here; the event carries no status.
type ClockEvent struct {
	EmployeeID uuid.UUID
	Timestamp  time.Time
	Direction  string
}

// classifyAgainst places t relative to expected±grace. Monotonic in t:
// moving t later only ever advances EARLY → ON_TIME → LATE.
func classifyAgainst(t, expected time.Time, grace time.Duration) string {
	switch {
	case t.Before(expected.Add(-grace)):
		return PunctualityEarly
	case t.After(expected.Add(grace)):
		return PunctualityLate
	default:
		return PunctualityOnTime
	}
}

// ClassifyClockIn compares the event against the window's expected clock-in
// and creates the employee-day record. Clock-out fields stay unset; the
// record status defaults from the clock-in classification (a late arrival is
// already LATE, anything else is ACCURATE pending clock-out).
func ClassifyClockIn(event ClockEvent, window *schedule.ShiftWindow) (string, AttendanceRecord) {
	status := classifyAgainst(event.Timestamp, window.ExpectedClockIn, window.GraceDuration())

	recordStatus := StatusAccurate
	if status == PunctualityLate {
		recordStatus = StatusLate
	}

	ts := event.Timestamp
	return status, AttendanceRecord{
		ID:            uuid.New(),
		EmployeeID:    event.EmployeeID,
		ClockInDate:   dateOnly(event.Timestamp),
		ClockInTime:   &ts,
		ClockInStatus: status,
		Status:        recordStatus,
	}
}

// ClassifyClockOut applies the same three-way comparison against the expected
// clock-out and finalizes the record. Overall status: any LATE leg wins; an
// early arrival that did not leave late counts as EARLY; everything else is
// ACCURATE. A clock-out preceding the clock-in is rejected, never stored.
func ClassifyClockOut(event ClockEvent, window *schedule.ShiftWindow, existing AttendanceRecord) (AttendanceRecord, error) {
	if existing.ClockInTime == nil || event.Timestamp.Before(*existing.ClockInTime) {
		return AttendanceRecord{}, attendanceerrors.ErrInvalidClockOut
	}

	outStatus := classifyAgainst(event.Timestamp, window.ExpectedClockOut, window.GraceDuration())

	ts := event.Timestamp
	existing.ClockOutTime = &ts
	existing.ClockOutStatus = &outStatus
	existing.TotalHours = roundHours(event.Timestamp.Sub(*existing.ClockInTime))
	existing.Status = resolveOverallStatus(existing.ClockInStatus, outStatus)

	return existing, nil
}

func resolveOverallStatus(inStatus, outStatus string) string {
	switch {
	case inStatus == PunctualityLate || outStatus == PunctualityLate:
		return StatusLate
	case inStatus == PunctualityEarly:
		return StatusEarly
	default:
		return StatusAccurate
	}
}

func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
