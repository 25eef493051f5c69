package rbacerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrUnknownResourceOrAction = apperror.New(
		apperror.CodeUnknownResourceAction,
		"unknown resource or action",
		http.StatusBadRequest,
	)
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"role not found",
		http.StatusNotFound,
	)
	ErrRoleNameTaken = apperror.New(
		apperror.CodeConflict,
		"role name already exists",
		http.StatusConflict,
	)
	ErrPermissionNotFound = apperror.New(
		apperror.CodeNotFound,
		"permission not found",
		http.StatusNotFound,
	)
	ErrActiveRoleNeedsPermissions = apperror.New(
		apperror.CodePolicyViolation,
		"an active role must have at least one permission",
		http.StatusBadRequest,
	)
	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid role id",
		http.StatusBadRequest,
	)
	ErrInvalidSubjectID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid subject id",
		http.StatusBadRequest,
	)
)
