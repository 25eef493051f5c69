package directory

import (
	"context"
	"errors"
	"strings"

	directoryerrors "go-workforce/internal/directory/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultEligibleLeadRoles are the role names allowed to head a team. The set
// is configuration, not code: deployments can override it at wiring time.
var DefaultEligibleLeadRoles = []string{"department_lead", "admin", "manager"}

//go:generate mockgen -source=directory_service.go -destination=mock/directory_service_mock.go -package=mock
type Service interface {
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	GetActiveEmployeeCount(ctx context.Context) (int, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]EmployeeResponse, error)
	ResolveSupervisor(ctx context.Context, employeeID string) (EmployeeResponse, error)
	IsEligibleLead(e *Employee) bool
}

type service struct {
	repo          Repository
	eligibleRoles map[string]struct{}
	logger        *zap.Logger
}

func NewService(repo Repository, eligibleLeadRoles []string, logger ...*zap.Logger) Service {
	l := zap.L().Named("directory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("directory.service")
	}

	if len(eligibleLeadRoles) == 0 {
		eligibleLeadRoles = DefaultEligibleLeadRoles
	}
	eligible := make(map[string]struct{}, len(eligibleLeadRoles))
	for _, name := range eligibleLeadRoles {
		eligible[strings.ToLower(name)] = struct{}{}
	}

	return &service{repo: repo, eligibleRoles: eligible, logger: l}
}

func (s *service) GetEmployee(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, directoryerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) GetActiveEmployeeCount(ctx context.Context) (int, error) {
	return s.repo.GetActiveEmployeeCount(ctx)
}

func (s *service) ListByDepartment(ctx context.Context, departmentID string) ([]EmployeeResponse, error) {
	if _, err := s.repo.GetDepartment(ctx, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, directoryerrors.ErrDepartmentNotFound
		}
		return nil, err
	}

	employees, err := s.repo.ListEmployeesByDepartment(ctx, departmentID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

// ResolveSupervisor walks the team_lead_id edge exactly one hop. The visited
// set is call-scoped: directory data is externally maintained and a malformed
// chain (self-reference or longer loop) must fail fast instead of recursing.
func (s *service) ResolveSupervisor(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeResponse{}, directoryerrors.ErrInvalidEmployeeID
	}

	visited := map[string]struct{}{employeeID: {}}

	e, err := s.repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if e.TeamLeadID == nil {
		return EmployeeResponse{}, directoryerrors.ErrNoTeamLead
	}

	leadID := e.TeamLeadID.String()
	if _, seen := visited[leadID]; seen {
		s.logger.Warn("team lead chain cycle",
			zap.String("employee_id", employeeID),
			zap.String("team_lead_id", leadID),
		)
		return EmployeeResponse{}, directoryerrors.ErrCycleDetected
	}
	visited[leadID] = struct{}{}

	lead, err := s.repo.GetEmployee(ctx, leadID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*lead), nil
}

func (s *service) IsEligibleLead(e *Employee) bool {
	if e == nil || !e.IsActive {
		return false
	}
	_, ok := s.eligibleRoles[strings.ToLower(e.RoleName)]
	return ok
}
