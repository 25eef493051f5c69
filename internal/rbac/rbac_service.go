package rbac

import (
	"context"
	"errors"

	"go-workforce/internal/domain"
	rbacerrors "go-workforce/internal/rbac/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)

	ListRoles(ctx context.Context) ([]RoleResponse, error)
	GetRole(ctx context.Context, id string) (RoleResponse, error)
	CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error)
	DeleteRole(ctx context.Context, id string) error
	ListPermissions(ctx context.Context) ([]PermissionResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{repo: repo, logger: l}
}

// Enforce loads the subject's roles and evaluates the policy engine. Every
// call reads a fresh snapshot; the engine itself holds no policy state.
func (s *service) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	if _, err := uuid.Parse(req.SubjectID); err != nil {
		return false, rbacerrors.ErrInvalidSubjectID
	}

	roles, err := s.repo.LoadRolesForSubject(ctx, req.SubjectID)
	if err != nil {
		s.logger.Error("load roles for subject failed",
			zap.String("subject_id", req.SubjectID),
			zap.Error(err),
		)
		return false, err
	}

	allowed, err := Authorize(roles, req.Resource, req.Action)
	if err != nil {
		return false, err
	}

	s.logger.Debug("enforce result",
		zap.String("subject_id", req.SubjectID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
		zap.Int("roles", len(roles)),
	)

	return allowed, nil
}

func (s *service) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	rows, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]RoleResponse, len(rows))
	for i, row := range rows {
		perms, err := s.repo.GetPermissionsByRoleID(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		res[i] = mapRoleToResponse(row, perms)
	}
	return res, nil
}

func (s *service) GetRole(ctx context.Context, id string) (RoleResponse, error) {
	row, err := s.findRole(ctx, id)
	if err != nil {
		return RoleResponse{}, err
	}

	perms, err := s.repo.GetPermissionsByRoleID(ctx, row.ID)
	if err != nil {
		return RoleResponse{}, err
	}
	return mapRoleToResponse(*row, perms), nil
}

func (s *service) CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	// Engine-level invariant, not a form constraint: an active role with no
	// permissions grants nothing and is rejected outright.
	if isActive && len(req.Permissions) == 0 {
		return RoleResponse{}, rbacerrors.ErrActiveRoleNeedsPermissions
	}

	if _, err := s.repo.GetRoleByName(ctx, req.Name); err == nil {
		return RoleResponse{}, rbacerrors.ErrRoleNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RoleResponse{}, err
	}

	if err := s.verifyPermissionIDs(ctx, req.Permissions); err != nil {
		return RoleResponse{}, err
	}

	row := &RoleRow{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    isActive,
	}
	if err := s.repo.CreateRole(ctx, row); err != nil {
		s.logger.Error("create role failed", zap.String("name", req.Name), zap.Error(err))
		return RoleResponse{}, err
	}
	if err := s.repo.ReplaceRolePermissions(ctx, row.ID, req.Permissions); err != nil {
		return RoleResponse{}, err
	}

	s.logger.Info("role created",
		zap.String("role_id", row.ID),
		zap.String("name", row.Name),
		zap.Int("permissions", len(req.Permissions)),
	)

	perms, err := s.repo.GetPermissionsByRoleID(ctx, row.ID)
	if err != nil {
		return RoleResponse{}, err
	}
	return mapRoleToResponse(*row, perms), nil
}

func (s *service) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error) {
	row, err := s.findRole(ctx, id)
	if err != nil {
		return RoleResponse{}, err
	}

	if req.Name != "" && req.Name != row.Name {
		if _, err := s.repo.GetRoleByName(ctx, req.Name); err == nil {
			return RoleResponse{}, rbacerrors.ErrRoleNameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleResponse{}, err
		}
		row.Name = req.Name
	}
	row.Description = req.Description
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}

	permissions := req.Permissions
	if permissions == nil {
		existing, err := s.repo.GetPermissionsByRoleID(ctx, row.ID)
		if err != nil {
			return RoleResponse{}, err
		}
		permissions = make([]string, len(existing))
		for i, p := range existing {
			permissions[i] = p.ID
		}
	}

	if row.IsActive && len(permissions) == 0 {
		return RoleResponse{}, rbacerrors.ErrActiveRoleNeedsPermissions
	}

	if req.Permissions != nil {
		if err := s.verifyPermissionIDs(ctx, req.Permissions); err != nil {
			return RoleResponse{}, err
		}
		if err := s.repo.ReplaceRolePermissions(ctx, row.ID, req.Permissions); err != nil {
			return RoleResponse{}, err
		}
	}

	if err := s.repo.UpdateRole(ctx, row); err != nil {
		s.logger.Error("update role failed", zap.String("role_id", id), zap.Error(err))
		return RoleResponse{}, err
	}

	perms, err := s.repo.GetPermissionsByRoleID(ctx, row.ID)
	if err != nil {
		return RoleResponse{}, err
	}
	return mapRoleToResponse(*row, perms), nil
}

func (s *service) DeleteRole(ctx context.Context, id string) error {
	if _, err := s.findRole(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteRole(ctx, id)
}

func (s *service) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	rows, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]PermissionResponse, len(rows))
	for i, p := range rows {
		res[i] = PermissionResponse{
			ID:       p.ID,
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
			IsActive: p.IsActive,
		}
	}
	return res, nil
}

func (s *service) findRole(ctx context.Context, id string) (*RoleRow, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, rbacerrors.ErrInvalidRoleID
	}

	row, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rbacerrors.ErrRoleNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *service) verifyPermissionIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := s.repo.CountPermissionsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return rbacerrors.ErrPermissionNotFound
	}
	return nil
}

func mapRoleToResponse(row RoleRow, perms []PermissionRow) RoleResponse {
	permIDs := make([]string, len(perms))
	for i, p := range perms {
		permIDs[i] = p.ID
	}
	return RoleResponse{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		IsActive:    row.IsActive,
		Permissions: permIDs,
	}
}
