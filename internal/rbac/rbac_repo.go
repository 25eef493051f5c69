package rbac

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// Enforcement
	LoadRolesForSubject(ctx context.Context, subjectID string) ([]Role, error)

	// Management
	ListRoles(ctx context.Context) ([]RoleRow, error)
	GetRoleByID(ctx context.Context, id string) (*RoleRow, error)
	GetRoleByName(ctx context.Context, name string) (*RoleRow, error)
	CreateRole(ctx context.Context, role *RoleRow) error
	UpdateRole(ctx context.Context, role *RoleRow) error
	DeleteRole(ctx context.Context, id string) error

	ListPermissions(ctx context.Context) ([]PermissionRow, error)
	CountPermissionsByIDs(ctx context.Context, ids []string) (int64, error)
	GetPermissionsByRoleID(ctx context.Context, roleID string) ([]PermissionRow, error)
	ReplaceRolePermissions(ctx context.Context, roleID string, permIDs []string) error
}

type RoleRow struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string `gorm:"uniqueIndex"`
	Description string
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   string
	UpdatedAt   string
}

func (RoleRow) TableName() string {
	return "roles"
}

type PermissionRow struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Resource string
	Action   string
	Label    string
	Category string
	IsActive bool `gorm:"not null;default:true"`
}

func (PermissionRow) TableName() string {
	return "permissions"
}

type subjectRoleScan struct {
	RoleID       string
	RoleName     string
	RoleActive   bool
	PermissionID string
	Resource     string
	Action       string
	PermActive   bool
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

// LoadRolesForSubject resolves the subject's roles together with the
// permissions each role owns, in the engine's in-memory shape. Roles with no
// permissions still come back (as inactive grants they simply never match).
func (r *repository) LoadRolesForSubject(ctx context.Context, subjectID string) ([]Role, error) {
	var rows []subjectRoleScan
	err := r.db.WithContext(ctx).
		Table("employee_roles").
		Select(`roles.id AS role_id,
			roles.name AS role_name,
			roles.is_active AS role_active,
			permissions.id AS permission_id,
			permissions.resource,
			permissions.action,
			permissions.is_active AS perm_active`).
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Joins("LEFT JOIN role_permissions ON role_permissions.role_id = roles.id").
		Joins("LEFT JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("employee_roles.employee_id = ?", subjectID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*Role)
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		role, ok := byID[row.RoleID]
		if !ok {
			role = &Role{ID: row.RoleID, Name: row.RoleName, IsActive: row.RoleActive}
			byID[row.RoleID] = role
			order = append(order, row.RoleID)
		}
		if row.PermissionID != "" {
			role.Permissions = append(role.Permissions, Permission{
				ID:       row.PermissionID,
				Resource: row.Resource,
				Action:   row.Action,
				IsActive: row.PermActive,
			})
		}
	}

	roles := make([]Role, 0, len(order))
	for _, id := range order {
		roles = append(roles, *byID[id])
	}
	return roles, nil
}

func (r *repository) ListRoles(ctx context.Context) ([]RoleRow, error) {
	var result []RoleRow
	err := r.db.WithContext(ctx).Order("name").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleByID(ctx context.Context, id string) (*RoleRow, error) {
	var result RoleRow
	err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) GetRoleByName(ctx context.Context, name string) (*RoleRow, error) {
	var result RoleRow
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) CreateRole(ctx context.Context, role *RoleRow) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) UpdateRole(ctx context.Context, role *RoleRow) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *repository) DeleteRole(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM role_permissions WHERE role_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM employee_roles WHERE role_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&RoleRow{}, "id = ?", id).Error
	})
}

func (r *repository) ListPermissions(ctx context.Context) ([]PermissionRow, error) {
	var result []PermissionRow
	err := r.db.WithContext(ctx).Order("category, label").Find(&result).Error
	return result, err
}

func (r *repository) CountPermissionsByIDs(ctx context.Context, ids []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PermissionRow{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

func (r *repository) GetPermissionsByRoleID(ctx context.Context, roleID string) ([]PermissionRow, error) {
	var result []PermissionRow
	err := r.db.WithContext(ctx).
		Table("permissions").
		Select("permissions.*").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Scan(&result).Error
	return result, err
}

func (r *repository) ReplaceRolePermissions(ctx context.Context, roleID string, permIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM role_permissions WHERE role_id = ?", roleID).Error; err != nil {
			return err
		}

		for _, pID := range permIDs {
			if err := tx.Exec("INSERT INTO role_permissions (role_id, permission_id) VALUES (?, ?)", roleID, pID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
