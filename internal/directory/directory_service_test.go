package directory_test

import (
	"context"
	"testing"

	"go-workforce/internal/directory"
	directoryerrors "go-workforce/internal/directory/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDirectoryRepository struct {
	employees   map[string]*directory.Employee
	departments map[string]*directory.Department
	activeCount int
}

func newFakeDirectoryRepository() *fakeDirectoryRepository {
	return &fakeDirectoryRepository{
		employees:   make(map[string]*directory.Employee),
		departments: make(map[string]*directory.Department),
	}
}

func (f *fakeDirectoryRepository) add(e *directory.Employee) *directory.Employee {
	f.employees[e.ID.String()] = e
	return e
}

func (f *fakeDirectoryRepository) GetEmployee(ctx context.Context, id string) (*directory.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDirectoryRepository) GetActiveEmployeeCount(ctx context.Context) (int, error) {
	return f.activeCount, nil
}

func (f *fakeDirectoryRepository) ListEmployeesByDepartment(ctx context.Context, departmentID string) ([]directory.Employee, error) {
	var res []directory.Employee
	for _, e := range f.employees {
		if e.DepartmentID != nil && e.DepartmentID.String() == departmentID {
			res = append(res, *e)
		}
	}
	return res, nil
}

func (f *fakeDirectoryRepository) ListActiveEmployeeIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for id, e := range f.employees {
		if e.IsActive {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeDirectoryRepository) GetDepartment(ctx context.Context, id string) (*directory.Department, error) {
	if d, ok := f.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func employeeWithRole(role string, lead *uuid.UUID) *directory.Employee {
	return &directory.Employee{
		ID:         uuid.New(),
		FullName:   "Test Employee",
		RoleName:   role,
		TeamLeadID: lead,
		IsActive:   true,
	}
}

func TestDirectoryService_ResolveSupervisor(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the one-hop team lead", func(t *testing.T) {
		repo := newFakeDirectoryRepository()
		lead := repo.add(employeeWithRole("department_lead", nil))
		staff := repo.add(employeeWithRole("associate", &lead.ID))
		svc := directory.NewService(repo, nil)

		resp, err := svc.ResolveSupervisor(ctx, staff.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, lead.ID.String(), resp.ID)
	})

	t.Run("does not walk past the first hop", func(t *testing.T) {
		repo := newFakeDirectoryRepository()
		grandLead := repo.add(employeeWithRole("admin", nil))
		lead := repo.add(employeeWithRole("department_lead", &grandLead.ID))
		staff := repo.add(employeeWithRole("associate", &lead.ID))
		svc := directory.NewService(repo, nil)

		resp, err := svc.ResolveSupervisor(ctx, staff.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, lead.ID.String(), resp.ID)
	})

	t.Run("negative no team lead assigned", func(t *testing.T) {
		repo := newFakeDirectoryRepository()
		staff := repo.add(employeeWithRole("associate", nil))
		svc := directory.NewService(repo, nil)

		_, err := svc.ResolveSupervisor(ctx, staff.ID.String())

		assert.ErrorIs(t, err, directoryerrors.ErrNoTeamLead)
	})

	t.Run("negative self reference fails fast", func(t *testing.T) {
		repo := newFakeDirectoryRepository()
		staff := employeeWithRole("associate", nil)
		staff.TeamLeadID = &staff.ID
		repo.add(staff)
		svc := directory.NewService(repo, nil)

		_, err := svc.ResolveSupervisor(ctx, staff.ID.String())

		assert.ErrorIs(t, err, directoryerrors.ErrCycleDetected)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		repo := newFakeDirectoryRepository()
		svc := directory.NewService(repo, nil)

		_, err := svc.ResolveSupervisor(ctx, uuid.New().String())

		assert.ErrorIs(t, err, directoryerrors.ErrEmployeeNotFound)
	})

	t.Run("negative invalid id", func(t *testing.T) {
		repo := newFakeDirectoryRepository()
		svc := directory.NewService(repo, nil)

		_, err := svc.ResolveSupervisor(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, directoryerrors.ErrInvalidEmployeeID)
	})
}

func TestDirectoryService_IsEligibleLead(t *testing.T) {
	repo := newFakeDirectoryRepository()
	svc := directory.NewService(repo, nil)

	tests := []struct {
		name     string
		employee *directory.Employee
		want     bool
	}{
		{"department lead is eligible", employeeWithRole("department_lead", nil), true},
		{"admin is eligible", employeeWithRole("admin", nil), true},
		{"manager is eligible", employeeWithRole("manager", nil), true},
		{"case insensitive match", employeeWithRole("Department_Lead", nil), true},
		{"associate is not eligible", employeeWithRole("associate", nil), false},
		{"nil employee is not eligible", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.IsEligibleLead(tt.employee))
		})
	}

	t.Run("inactive lead-role employee is not eligible", func(t *testing.T) {
		e := employeeWithRole("manager", nil)
		e.IsActive = false
		assert.False(t, svc.IsEligibleLead(e))
	})

	t.Run("custom eligible set replaces the default", func(t *testing.T) {
		custom := directory.NewService(repo, []string{"supervisor"})
		assert.True(t, custom.IsEligibleLead(employeeWithRole("supervisor", nil)))
		assert.False(t, custom.IsEligibleLead(employeeWithRole("manager", nil)))
	})
}

func TestDirectoryService_ListByDepartment(t *testing.T) {
	ctx := context.Background()

	t.Run("negative unknown department", func(t *testing.T) {
		repo := newFakeDirectoryRepository()
		svc := directory.NewService(repo, nil)

		_, err := svc.ListByDepartment(ctx, uuid.New().String())

		assert.ErrorIs(t, err, directoryerrors.ErrDepartmentNotFound)
	})

	t.Run("success", func(t *testing.T) {
		repo := newFakeDirectoryRepository()
		deptID := uuid.New()
		repo.departments[deptID.String()] = &directory.Department{ID: deptID, Name: "Engineering"}
		e := employeeWithRole("associate", nil)
		e.DepartmentID = &deptID
		repo.add(e)
		svc := directory.NewService(repo, nil)

		resp, err := svc.ListByDepartment(ctx, deptID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, e.ID.String(), resp[0].ID)
	})
}
