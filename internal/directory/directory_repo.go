package directory

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=directory_repo.go -destination=mock/directory_repo_mock.go -package=mock
type Repository interface {
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	GetActiveEmployeeCount(ctx context.Context) (int, error)
	ListEmployeesByDepartment(ctx context.Context, departmentID string) ([]Employee, error)
	ListActiveEmployeeIDs(ctx context.Context) ([]string, error)
	GetDepartment(ctx context.Context, id string) (*Department, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) GetActiveEmployeeCount(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("is_active = TRUE").
		Count(&count).Error
	return int(count), err
}

func (r *repository) ListEmployeesByDepartment(ctx context.Context, departmentID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) ListActiveEmployeeIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("is_active = TRUE").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) GetDepartment(ctx context.Context, id string) (*Department, error) {
	var d Department
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}
