package directory

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is owned by the organizational directory; this service only reads
// it. TeamLeadID is the one-hop delegation edge used for supervisor
// resolution.
type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName     string     `gorm:"size:255;not null"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index"`
	RoleID       *uuid.UUID `gorm:"type:uuid"`
	RoleName     string     `gorm:"column:role_name;size:100"`
	TeamLeadID   *uuid.UUID `gorm:"type:uuid"`
	IsActive     bool       `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

type Department struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"size:255;not null"`
	TeamLeadID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Department) TableName() string {
	return "departments"
}
