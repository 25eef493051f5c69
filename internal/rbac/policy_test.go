package rbac

import (
	"testing"

	rbacerrors "go-workforce/internal/rbac/errors"

	"github.com/stretchr/testify/assert"
)

func roleWith(perms ...Permission) []Role {
	return []Role{{ID: "r1", Name: "tester", IsActive: true, Permissions: perms}}
}

func activePerm(resource, action string) Permission {
	return Permission{ID: resource + ":" + action, Resource: resource, Action: action, IsActive: true}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		roles    []Role
		resource string
		action   string
		want     bool
	}{
		{
			name:     "exact match allows",
			roles:    roleWith(activePerm("attendance", "read")),
			resource: "attendance",
			action:   "read",
			want:     true,
		},
		{
			name:     "no matching permission denies",
			roles:    roleWith(activePerm("attendance", "read")),
			resource: "attendance",
			action:   "update",
			want:     false,
		},
		{
			name:     "different resource denies",
			roles:    roleWith(activePerm("attendance", "read")),
			resource: "leave",
			action:   "read",
			want:     false,
		},
		{
			name:     "no roles denies",
			roles:    nil,
			resource: "leave",
			action:   "read",
			want:     false,
		},
		{
			name: "second role grants access",
			roles: []Role{
				{ID: "r1", Name: "viewer", IsActive: true, Permissions: []Permission{activePerm("reports", "read")}},
				{ID: "r2", Name: "approver", IsActive: true, Permissions: []Permission{activePerm("leave", "approve")}},
			},
			resource: "leave",
			action:   "approve",
			want:     true,
		},
		{
			name: "inactive role is skipped",
			roles: []Role{
				{ID: "r1", Name: "retired", IsActive: false, Permissions: []Permission{activePerm("leave", "approve")}},
			},
			resource: "leave",
			action:   "approve",
			want:     false,
		},
		{
			name: "inactive permission is skipped",
			roles: roleWith(Permission{
				ID: "p1", Resource: "leave", Action: "approve", IsActive: false,
			}),
			resource: "leave",
			action:   "approve",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Authorize(tt.roles, tt.resource, tt.action)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorizeManageImpliesAll(t *testing.T) {
	roles := roleWith(activePerm("payroll", ActionManage))

	for _, action := range []string{"create", "read", "update", "delete", "approve", "reject", "export", "import"} {
		got, err := Authorize(roles, "payroll", action)
		assert.NoError(t, err)
		assert.True(t, got, "manage should imply %s", action)
	}

	// manage is scoped to its resource
	got, err := Authorize(roles, "leave", "read")
	assert.NoError(t, err)
	assert.False(t, got)
}

func TestAuthorizeUnknownInputs(t *testing.T) {
	roles := roleWith(activePerm("attendance", "read"))

	t.Run("negative unknown resource", func(t *testing.T) {
		got, err := Authorize(roles, "spaceships", "read")
		assert.ErrorIs(t, err, rbacerrors.ErrUnknownResourceOrAction)
		assert.False(t, got)
	})

	t.Run("negative unknown action", func(t *testing.T) {
		got, err := Authorize(roles, "attendance", "teleport")
		assert.ErrorIs(t, err, rbacerrors.ErrUnknownResourceOrAction)
		assert.False(t, got)
	})

	t.Run("negative empty resource and action", func(t *testing.T) {
		got, err := Authorize(roles, "", "")
		assert.ErrorIs(t, err, rbacerrors.ErrUnknownResourceOrAction)
		assert.False(t, got)
	})
}
