package middleware

import (
	"context"
	"net/http"

	"go-workforce/internal/domain"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ContextKey string

const ContextEmployeeID ContextKey = "employee_id"

// PolicyService is a local interface: any package with an Enforce method over
// domain.EnforceRequest satisfies it, so routes do not import the rbac
// package directly.
type PolicyService interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize gates a route on the policy engine. An unknown resource or
// action surfaces as a caller error, not as a deny.
func RBACAuthorize(service PolicyService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID, ok := c.Get(string(ContextEmployeeID))
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		req := domain.EnforceRequest{
			SubjectID: employeeID.(string),
			Resource:  resource,
			Action:    action,
		}

		allowed, err := service.Enforce(c.Request.Context(), req)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			CountAuthzDenial(resource, action)
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "You do not have permission to access this resource",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
