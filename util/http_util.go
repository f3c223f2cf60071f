// util/http_util.go
package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ems_errors "github.com/grootan/ems/api/errors"
	logger "github.com/grootan/ems/api/logging"
	"github.com/grootan/ems/api/model"
)

// principalKey is the gin context key the authenticator binds the
// resolved Principal under. The Principal is threaded through the
// request context explicitly; there is no ambient security state.
const principalKey = "principal"

// RespondWithError writes the uniform error envelope. The code field
// carries the sentinel's stable identifier so clients can dispatch
// without parsing the message.
func RespondWithError(c *gin.Context, status int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))

	code := ems_errors.Code(err)
	if code == "" {
		if status >= http.StatusInternalServerError {
			code = "internal_error"
		} else {
			code = "bad_request"
		}
	}

	c.JSON(status, gin.H{
		"status":  status,
		"code":    code,
		"message": message,
		"path":    c.Request.URL.Path,
	})
}

// SetPrincipal binds the authenticated Principal to the request context.
func SetPrincipal(c *gin.Context, principal *model.Principal) {
	c.Set(principalKey, principal)
}

// GetPrincipal returns the bound Principal, or nil for anonymous requests.
func GetPrincipal(c *gin.Context) *model.Principal {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	principal, ok := value.(*model.Principal)
	if !ok {
		return nil
	}
	return principal
}
