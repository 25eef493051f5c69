package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput          = "INVALID_INPUT"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeNotFound              = "NOT_FOUND"
	CodeConflict              = "CONFLICT"
	CodeInvalidState          = "INVALID_STATE"
	CodeCycleDetected         = "CYCLE_DETECTED"
	CodeUnknownResourceAction = "UNKNOWN_RESOURCE_ACTION"
	CodePolicyViolation       = "POLICY_VIOLATION"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
