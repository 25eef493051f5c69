package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-workforce/internal/leave"
	leaveerrors "go-workforce/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createFn               func(ctx context.Context, l *leave.LeaveRequest) error
	findAllFn              func(ctx context.Context) ([]leave.LeaveRequest, error)
	findByIDFn             func(ctx context.Context, id string) (*leave.LeaveRequest, error)
	findAllByEmployeeFn    func(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error)
	updateFn               func(ctx context.Context, l *leave.LeaveRequest) error
	deleteFn               func(ctx context.Context, id string) error
	hasOverlappingPeriodFn func(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository { return f }

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.LeaveRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeLeaveRepository) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	if f.hasOverlappingPeriodFn != nil {
		return f.hasOverlappingPeriodFn(ctx, employeeID, startDate, endDate, excludeID)
	}
	return false, nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func setupLeaveServiceTest(t *testing.T, repo *fakeLeaveRepository, dir *fakeHierarchy) (leave.Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	resolver := leave.NewResolver(dir, nil)
	svc := leave.NewService(db, repo, resolver, &fakeCounterRepository{}, nil)
	return svc, mock
}

func expectLeaveTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func createRequest(employeeID, relievingID uuid.UUID) leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		EmployeeID:       employeeID.String(),
		RelievingStaffID: relievingID.String(),
		LeaveType:        leave.TypeAnnual,
		StartDate:        "2026-06-01",
		EndDate:          "2026-06-12",
		Reason:           "family trip",
	}
}

func TestLeaveServiceCreate(t *testing.T) {
	actorID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		dir := newFakeHierarchy()
		lead := dir.add(activeEmployee("manager"))
		relieving := activeEmployee("department_lead")
		relieving.TeamLeadID = &lead.ID
		dir.add(relieving)
		employee := dir.add(activeEmployee("associate"))

		var stored *leave.LeaveRequest
		repo := &fakeLeaveRepository{
			createFn: func(ctx context.Context, l *leave.LeaveRequest) error {
				stored = l
				return nil
			},
		}
		svc, mock := setupLeaveServiceTest(t, repo, dir)
		expectLeaveTx(t, mock, true)

		req := createRequest(employee.ID, relieving.ID)
		// ignored even when supplied by the caller
		req.ResumptionDate = "2026-07-30"

		res, err := svc.Create(context.Background(), actorID, req)
		assert.NoError(t, err)
		assert.NotNil(t, stored)
		assert.Equal(t, "LVE-000001", res.ReferenceNumber)
		assert.Equal(t, "2026-06-13", res.ResumptionDate)
		assert.Equal(t, 12, res.TotalDays)
		assert.Equal(t, leave.StatusPending, res.Status)
		if assert.NotNil(t, res.SupervisorID) {
			assert.Equal(t, lead.ID.String(), *res.SupervisorID)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success without supervisor", func(t *testing.T) {
		dir := newFakeHierarchy()
		relieving := dir.add(activeEmployee("associate"))
		employee := dir.add(activeEmployee("associate"))

		svc, mock := setupLeaveServiceTest(t, &fakeLeaveRepository{}, dir)
		expectLeaveTx(t, mock, true)

		res, err := svc.Create(context.Background(), actorID, createRequest(employee.ID, relieving.ID))
		assert.NoError(t, err)
		assert.Nil(t, res.SupervisorID)
		assert.Equal(t, leave.StatusPending, res.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative overlapping period", func(t *testing.T) {
		dir := newFakeHierarchy()
		relieving := dir.add(activeEmployee("associate"))
		employee := dir.add(activeEmployee("associate"))

		repo := &fakeLeaveRepository{
			hasOverlappingPeriodFn: func(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
				return true, nil
			},
		}
		svc, mock := setupLeaveServiceTest(t, repo, dir)
		expectLeaveTx(t, mock, false)

		_, err := svc.Create(context.Background(), actorID, createRequest(employee.ID, relieving.ID))
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative unknown employee fails before tx", func(t *testing.T) {
		dir := newFakeHierarchy()
		relieving := dir.add(activeEmployee("associate"))

		svc, mock := setupLeaveServiceTest(t, &fakeLeaveRepository{}, dir)

		_, err := svc.Create(context.Background(), actorID, createRequest(uuid.New(), relieving.ID))
		assert.ErrorIs(t, err, leaveerrors.ErrUnknownEmployee)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative invalid date format", func(t *testing.T) {
		dir := newFakeHierarchy()
		relieving := dir.add(activeEmployee("associate"))
		employee := dir.add(activeEmployee("associate"))

		svc, _ := setupLeaveServiceTest(t, &fakeLeaveRepository{}, dir)

		req := createRequest(employee.ID, relieving.ID)
		req.StartDate = "01/06/2026"
		_, err := svc.Create(context.Background(), actorID, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("negative invalid actor id", func(t *testing.T) {
		dir := newFakeHierarchy()
		svc, _ := setupLeaveServiceTest(t, &fakeLeaveRepository{}, dir)

		_, err := svc.Create(context.Background(), "not-a-uuid", createRequest(uuid.New(), uuid.New()))
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidActorID)
	})
}

func pendingLeave(id uuid.UUID) *leave.LeaveRequest {
	return &leave.LeaveRequest{
		ID:               id,
		ReferenceNumber:  "LVE-000042",
		EmployeeID:       uuid.New(),
		LeaveType:        leave.TypeAnnual,
		StartDate:        time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		ResumptionDate:   time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC),
		TotalDays:        12,
		RelievingStaffID: uuid.New(),
		Status:           leave.StatusPending,
		CreatedBy:        uuid.New(),
	}
}

func TestLeaveServiceTransitions(t *testing.T) {
	actorID := uuid.NewString()
	leaveID := uuid.New()

	t.Run("success approve", func(t *testing.T) {
		var updated *leave.LeaveRequest
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return pendingLeave(leaveID), nil
			},
			updateFn: func(ctx context.Context, l *leave.LeaveRequest) error {
				updated = l
				return nil
			},
		}
		svc, mock := setupLeaveServiceTest(t, repo, newFakeHierarchy())
		expectLeaveTx(t, mock, true)

		res, err := svc.Approve(context.Background(), actorID, leaveID.String())
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, res.Status)
		if assert.NotNil(t, updated) {
			assert.Equal(t, leave.StatusApproved, updated.Status)
			if assert.NotNil(t, updated.ApprovedBy) {
				assert.Equal(t, actorID, updated.ApprovedBy.String())
			}
			assert.NotNil(t, updated.ApprovedAt)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success reject with reason", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return pendingLeave(leaveID), nil
			},
		}
		svc, mock := setupLeaveServiceTest(t, repo, newFakeHierarchy())
		expectLeaveTx(t, mock, true)

		res, err := svc.Reject(context.Background(), actorID, leaveID.String(), "coverage conflict")
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, res.Status)
		if assert.NotNil(t, res.RejectionReason) {
			assert.Equal(t, "coverage conflict", *res.RejectionReason)
		}
		assert.Nil(t, res.ApprovedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative reject without reason", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return pendingLeave(leaveID), nil
			},
		}
		svc, mock := setupLeaveServiceTest(t, repo, newFakeHierarchy())
		expectLeaveTx(t, mock, false)

		_, err := svc.Reject(context.Background(), actorID, leaveID.String(), "")
		assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative approve already approved", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				l := pendingLeave(leaveID)
				l.Status = leave.StatusApproved
				return l, nil
			},
		}
		svc, mock := setupLeaveServiceTest(t, repo, newFakeHierarchy())
		expectLeaveTx(t, mock, false)

		_, err := svc.Approve(context.Background(), actorID, leaveID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative reject already rejected", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				l := pendingLeave(leaveID)
				l.Status = leave.StatusRejected
				return l, nil
			},
		}
		svc, mock := setupLeaveServiceTest(t, repo, newFakeHierarchy())
		expectLeaveTx(t, mock, false)

		_, err := svc.Reject(context.Background(), actorID, leaveID.String(), "late")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative leave not found", func(t *testing.T) {
		svc, mock := setupLeaveServiceTest(t, &fakeLeaveRepository{}, newFakeHierarchy())
		expectLeaveTx(t, mock, false)

		_, err := svc.Approve(context.Background(), actorID, uuid.NewString())
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative invalid actor id", func(t *testing.T) {
		svc, _ := setupLeaveServiceTest(t, &fakeLeaveRepository{}, newFakeHierarchy())

		_, err := svc.Approve(context.Background(), "abc", leaveID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidActorID)
	})
}

func TestLeaveServiceGetAllByEmployee(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		employeeID := uuid.New()
		repo := &fakeLeaveRepository{
			findAllByEmployeeFn: func(ctx context.Context, id string) ([]leave.LeaveRequest, error) {
				assert.Equal(t, employeeID.String(), id)
				return []leave.LeaveRequest{*pendingLeave(uuid.New())}, nil
			},
		}
		svc, _ := setupLeaveServiceTest(t, repo, newFakeHierarchy())

		res, err := svc.GetAllByEmployee(context.Background(), employeeID.String())
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("negative invalid employee id", func(t *testing.T) {
		svc, _ := setupLeaveServiceTest(t, &fakeLeaveRepository{}, newFakeHierarchy())

		_, err := svc.GetAllByEmployee(context.Background(), "abc")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidEmployeeID)
	})
}
