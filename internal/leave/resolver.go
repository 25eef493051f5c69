package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-workforce/internal/directory"
	directoryerrors "go-workforce/internal/directory/errors"
	leaveerrors "go-workforce/internal/leave/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hierarchy is the slice of the employee directory the resolver reads.
// directory.Repository satisfies it.
type Hierarchy interface {
	GetEmployee(ctx context.Context, id string) (*directory.Employee, error)
}

// Draft is a leave request as submitted, before any checks.
type Draft struct {
	EmployeeID       uuid.UUID
	RelievingStaffID uuid.UUID
	LeaveType        string
	StartDate        time.Time
	EndDate          time.Time
	Reason           string
}

// ValidatedDraft is a Draft whose dates and employee references checked out.
// It carries the loaded directory rows so resolution does not re-fetch them.
type ValidatedDraft struct {
	Draft
	Employee       *directory.Employee
	RelievingStaff *directory.Employee
}

// ResolvedRequest is the final form: resumption date computed, supervisor
// assigned when one could be derived, ready to persist as PENDING.
type ResolvedRequest struct {
	ValidatedDraft
	ResumptionDate time.Time
	SupervisorID   *uuid.UUID
	Status         string
}

type Resolver struct {
	dir           Hierarchy
	eligibleRoles map[string]struct{}
}

func NewResolver(dir Hierarchy, eligibleLeadRoles []string) *Resolver {
	if len(eligibleLeadRoles) == 0 {
		eligibleLeadRoles = directory.DefaultEligibleLeadRoles
	}
	eligible := make(map[string]struct{}, len(eligibleLeadRoles))
	for _, name := range eligibleLeadRoles {
		eligible[strings.ToLower(name)] = struct{}{}
	}
	return &Resolver{dir: dir, eligibleRoles: eligible}
}

// Validate checks the draft's leave type, date order and employee references.
// Both the requesting employee and the relieving staff must resolve to active
// directory rows.
func (r *Resolver) Validate(ctx context.Context, d Draft) (ValidatedDraft, error) {
	if !isKnownLeaveType(d.LeaveType) {
		return ValidatedDraft{}, leaveerrors.ErrInvalidLeaveType
	}
	if d.StartDate.After(d.EndDate) {
		return ValidatedDraft{}, leaveerrors.ErrInvalidDateRange
	}

	employee, err := r.activeEmployee(ctx, d.EmployeeID)
	if err != nil {
		return ValidatedDraft{}, err
	}
	relieving, err := r.activeEmployee(ctx, d.RelievingStaffID)
	if err != nil {
		return ValidatedDraft{}, err
	}

	return ValidatedDraft{Draft: d, Employee: employee, RelievingStaff: relieving}, nil
}

// ComputeResumptionDate is always end date plus one calendar day. Any value
// supplied by the caller is discarded.
func ComputeResumptionDate(endDate time.Time) time.Time {
	return endDate.AddDate(0, 0, 1)
}

// ResolveSupervisor walks one hop up from the relieving staff. A relieving
// staff whose role is not lead-eligible, or who has no team lead assigned,
// yields a nil supervisor; submission proceeds either way. A revisited id on
// the walk means the directory data is malformed and fails the call.
func (r *Resolver) ResolveSupervisor(ctx context.Context, v ValidatedDraft) (*uuid.UUID, error) {
	staff := v.RelievingStaff
	if staff == nil || !staff.IsActive {
		return nil, nil
	}
	if _, ok := r.eligibleRoles[strings.ToLower(staff.RoleName)]; !ok {
		return nil, nil
	}
	if staff.TeamLeadID == nil {
		return nil, nil
	}

	visited := map[uuid.UUID]struct{}{staff.ID: {}}
	leadID := *staff.TeamLeadID
	if _, seen := visited[leadID]; seen {
		return nil, directoryerrors.ErrCycleDetected
	}

	lead, err := r.dir.GetEmployee(ctx, leadID.String())
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	supervisorID := lead.ID
	return &supervisorID, nil
}

// Resolve turns a validated draft into the persistable form.
func (r *Resolver) Resolve(ctx context.Context, v ValidatedDraft) (ResolvedRequest, error) {
	supervisorID, err := r.ResolveSupervisor(ctx, v)
	if err != nil {
		return ResolvedRequest{}, err
	}
	return ResolvedRequest{
		ValidatedDraft: v,
		ResumptionDate: ComputeResumptionDate(v.EndDate),
		SupervisorID:   supervisorID,
		Status:         StatusPending,
	}, nil
}

func (r *Resolver) activeEmployee(ctx context.Context, id uuid.UUID) (*directory.Employee, error) {
	e, err := r.dir.GetEmployee(ctx, id.String())
	if err != nil {
		if isNotFound(err) {
			return nil, leaveerrors.ErrUnknownEmployee
		}
		return nil, err
	}
	if !e.IsActive {
		return nil, leaveerrors.ErrUnknownEmployee
	}
	return e, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, directoryerrors.ErrEmployeeNotFound) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}
