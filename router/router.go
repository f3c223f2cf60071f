// api/router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grootan/ems/api/auth"
	"github.com/grootan/ems/api/controller"
	"github.com/grootan/ems/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	tokens *auth.TokenService,
	resolver *auth.IdentityResolver,
	policy *auth.Policy,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(middleware.Authenticator(tokens, resolver))
	router.Use(middleware.Authorizer(policy))

	router.GET("/docs", docsIndex)

	controllers.Auth.RegisterRoutes(router)
	controllers.Dept.RegisterRoutes(router)
	controllers.Emp.RegisterRoutes(router)

	return router
}

// docsIndex serves a machine-readable index of the API surface. The
// route is public so clients can discover endpoints before logging in.
func docsIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "ems-api",
		"endpoints": []gin.H{
			{"method": "POST", "path": "/auth/login", "description": "Exchange email and password for a bearer token"},
			{"method": "GET", "path": "/api/departments", "description": "List departments"},
			{"method": "POST", "path": "/api/departments", "description": "Create a department"},
			{"method": "GET", "path": "/api/departments/:id", "description": "Fetch a department by id"},
			{"method": "PUT", "path": "/api/departments/:id", "description": "Update a department"},
			{"method": "DELETE", "path": "/api/departments/:id", "description": "Delete an empty department"},
			{"method": "GET", "path": "/api/employees", "description": "Search employees by query, department and status"},
			{"method": "POST", "path": "/api/employees", "description": "Create an employee and their login account"},
			{"method": "GET", "path": "/api/employees/:id", "description": "Fetch an employee by id"},
			{"method": "PUT", "path": "/api/employees/:id", "description": "Update an employee"},
			{"method": "DELETE", "path": "/api/employees/:id", "description": "Delete an employee"},
		},
	})
}
