package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *AttendanceRecord) error
	CreateBatch(ctx context.Context, records []AttendanceRecord) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]AttendanceRecord, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]AttendanceRecord, error)
	ListEmployeeIDsWithRecordOnDate(ctx context.Context, date time.Time) ([]string, error)
	Update(ctx context.Context, a *AttendanceRecord) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, a *AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) CreateBatch(ctx context.Context, records []AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(records, 200).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error) {
	var a AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("clock_in_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("clock_in_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByDateRange(ctx context.Context, start, end time.Time) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("clock_in_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("clock_in_date ASC, employee_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListEmployeeIDsWithRecordOnDate(ctx context.Context, date time.Time) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&AttendanceRecord{}).
		Where("clock_in_date = ?", date.Format("2006-01-02")).
		Pluck("employee_id", &ids).Error
	return ids, err
}

func (r *repository) Update(ctx context.Context, a *AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(a).Error
}
