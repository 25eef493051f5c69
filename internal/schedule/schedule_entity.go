package schedule

import (
	"time"

	"github.com/google/uuid"
)

// ShiftWindow is the expected clock-in/clock-out range for an employee on a
// date. It is immutable once looked up for a classification call.
type ShiftWindow struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_shift_employee_date"`
	ShiftDate        time.Time `gorm:"type:date;not null;uniqueIndex:uq_shift_employee_date"`
	ExpectedClockIn  time.Time `gorm:"type:timestamptz;not null"`
	ExpectedClockOut time.Time `gorm:"type:timestamptz;not null"`
	GraceMinutes     int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ShiftWindow) TableName() string {
	return "shift_windows"
}

// GraceDuration is the grace period as a duration.
func (w ShiftWindow) GraceDuration() time.Duration {
	return time.Duration(w.GraceMinutes) * time.Minute
}
