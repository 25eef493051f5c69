package rbac

import (
	rbacerrors "go-workforce/internal/rbac/errors"
)

// ActionManage implies every other action on the same resource. There is no
// wildcard on resource.
const ActionManage = "manage"

var knownResources = map[string]struct{}{
	"users":            {},
	"roles":            {},
	"permissions":      {},
	"departments":      {},
	"employees":        {},
	"attendance":       {},
	"payroll":          {},
	"leave":            {},
	"reports":          {},
	"settings":         {},
	"announcements":    {},
	"banks":            {},
	"employment_types": {},
	"payroll_classes":  {},
	"leave_types":      {},
}

var knownActions = map[string]struct{}{
	"create":  {},
	"read":    {},
	"update":  {},
	"delete":  {},
	"manage":  {},
	"approve": {},
	"reject":  {},
	"export":  {},
	"import":  {},
}

// Role and Permission are the in-memory shapes the policy engine evaluates.
// They carry no persistence concerns; the repository maps rows into them.
type Role struct {
	ID          string
	Name        string
	IsActive    bool
	Permissions []Permission
}

type Permission struct {
	ID       string
	Resource string
	Action   string
	IsActive bool
}

func KnownResource(resource string) bool {
	_, ok := knownResources[resource]
	return ok
}

func KnownAction(action string) bool {
	_, ok := knownActions[action]
	return ok
}

// Authorize answers whether any of the subject's roles grants (resource,
// action). An out-of-enum resource or action is a caller contract violation
// and fails with a typed error instead of a silent deny, so misconfigured
// callers are distinguishable from legitimately denied ones.
func Authorize(subjectRoles []Role, resource, action string) (bool, error) {
	if !KnownResource(resource) || !KnownAction(action) {
		return false, rbacerrors.ErrUnknownResourceOrAction
	}

	for _, role := range subjectRoles {
		if !role.IsActive {
			continue
		}
		for _, perm := range role.Permissions {
			if !perm.IsActive || perm.Resource != resource {
				continue
			}
			if perm.Action == action || perm.Action == ActionManage {
				return true, nil
			}
		}
	}

	return false, nil
}
