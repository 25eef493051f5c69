package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeAnnual        = "ANNUAL"
	TypeSick          = "SICK"
	TypeCompassionate = "COMPASSIONATE"
	TypeMaternity     = "MATERNITY"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type LeaveRequest struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferenceNumber string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_leave_reference"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_employee_dates"`

	LeaveType string    `gorm:"type:varchar(30);not null;default:'ANNUAL'"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_employee_dates"`
	// ResumptionDate is derived from EndDate and rewritten on every change.
	ResumptionDate time.Time `gorm:"type:date;not null"`
	TotalDays      int       `gorm:"type:int;not null;default:1"`
	Reason         string    `gorm:"type:text"`

	RelievingStaffID uuid.UUID  `gorm:"type:uuid;not null"`
	SupervisorID     *uuid.UUID `gorm:"type:uuid"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_status"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string    `gorm:"type:text"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index:idx_leave_deleted_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func isKnownLeaveType(v string) bool {
	switch v {
	case TypeAnnual, TypeSick, TypeCompassionate, TypeMaternity:
		return true
	default:
		return false
	}
}
