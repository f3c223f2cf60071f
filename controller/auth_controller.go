// api/controller/auth_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ems_errors "github.com/grootan/ems/api/errors"
	"github.com/grootan/ems/api/model"
	"github.com/grootan/ems/api/service"
	"github.com/grootan/ems/api/util"
)

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuthController) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", ac.Login)
	}
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid login payload", err)
		return
	}

	resp, err := ac.authService.Login(c, req.Email, req.Password)
	if err != nil {
		switch err {
		case ems_errors.ErrInvalidCredentials:
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Login failed", ems_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
