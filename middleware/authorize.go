package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/grootan/ems/api/auth"
	ems_errors "github.com/grootan/ems/api/errors"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/util"
)

// Authorizer evaluates the access policy for the request's method and path
// against the principal bound by Authenticator, if any.
func Authorizer(policy *auth.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := util.GetPrincipal(c)

		decision := policy.Authorize(principal, c.Request.Method, c.Request.URL.Path)
		switch decision {
		case auth.Allow:
			c.Next()
		case auth.DenyAnonymous:
			util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", ems_errors.ErrUnauthorized)
			c.Abort()
		case auth.DenyRole:
			logger.Warn("Access denied by role policy",
				zap.String("subject", principal.Email),
				zap.String("role", string(principal.Role)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path))
			util.RespondWithError(c, http.StatusForbidden, "Access denied", ems_errors.ErrForbidden)
			c.Abort()
		default:
			util.RespondWithError(c, http.StatusForbidden, "Access denied", ems_errors.ErrForbidden)
			c.Abort()
		}
	}
}
