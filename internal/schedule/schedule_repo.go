package schedule

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock

// Provider supplies shift windows to the attendance classifier. Only lookups
// go through here; window authoring belongs to the scheduling system.
type Provider interface {
	GetShiftWindow(ctx context.Context, employeeID string, date time.Time) (*ShiftWindow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Provider {
	return &repository{db: db}
}

func (r *repository) GetShiftWindow(ctx context.Context, employeeID string, date time.Time) (*ShiftWindow, error) {
	var w ShiftWindow
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("shift_date = ?", date.Format("2006-01-02")).
		First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}
