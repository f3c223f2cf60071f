package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/grootan/ems/api/auth"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/util"
)

// Authenticator resolves the bearer token on each request into a Principal.
// Every failure mode (missing header, malformed token, expired token,
// unknown or disabled account) leaves the request anonymous rather than
// rejecting it; the authorization middleware decides what anonymous
// requests may do.
func Authenticator(tokens *auth.TokenService, resolver *auth.IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		subject, _, err := tokens.Parse(tokenString)
		if err != nil {
			logger.Warn("Discarding unusable bearer token",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.Next()
			return
		}

		principal, err := resolver.Resolve(c.Request.Context(), subject)
		if err != nil {
			logger.Warn("Token subject has no account, treating request as anonymous",
				zap.String("subject", subject),
				zap.Error(err))
			c.Next()
			return
		}

		if !principal.Enabled {
			logger.Warn("Disabled account presented a valid token",
				zap.String("subject", subject))
			c.Next()
			return
		}

		util.SetPrincipal(c, principal)
		c.Next()
	}
}
