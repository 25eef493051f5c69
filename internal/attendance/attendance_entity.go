package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Punctuality of a single clock event relative to its shift window.
const (
	PunctualityEarly  = "EARLY"
	PunctualityOnTime = "ON_TIME"
	PunctualityLate   = "LATE"
)

// Overall status of an employee-day record.
const (
	StatusAccurate = "ACCURATE"
	StatusLate     = "LATE"
	StatusEarly    = "EARLY"
	StatusAbsent   = "ABSENT"
)

// AttendanceRecord is append-only history: one row per employee per date,
// created on clock-in and mutated exactly once on clock-out. Classification
// fields are set only by the classifier, never by callers.
type AttendanceRecord struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	ClockInDate    time.Time  `gorm:"type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	ClockInTime    *time.Time `gorm:"type:timestamptz"`
	ClockOutTime   *time.Time `gorm:"type:timestamptz"`
	ClockInStatus  string     `gorm:"type:varchar(10)"`
	ClockOutStatus *string    `gorm:"type:varchar(10)"`
	TotalHours     float64    `gorm:"type:numeric(5,2);not null;default:0"`
	Status         string     `gorm:"type:varchar(10);not null"`
	Notes          *string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
