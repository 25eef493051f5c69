package directoryerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrNoTeamLead = apperror.New(
		apperror.CodeNotFound,
		"no team lead assigned",
		http.StatusNotFound,
	)
	ErrCycleDetected = apperror.New(
		apperror.CodeCycleDetected,
		"cycle detected in team lead chain",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)
