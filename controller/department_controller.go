// api/controller/department_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	ems_errors "github.com/grootan/ems/api/errors"
	"github.com/grootan/ems/api/model"
	"github.com/grootan/ems/api/service"
	"github.com/grootan/ems/api/util"
)

type DepartmentController struct {
	departmentService service.IDepartmentService
}

func NewDepartmentController(departmentService service.IDepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// RegisterRoutes registers the API routes
func (dc *DepartmentController) RegisterRoutes(r *gin.Engine) {
	departments := r.Group("/api/departments")
	{
		departments.POST("", dc.CreateDepartment)
		departments.PUT("/:id", dc.UpdateDepartment)
		departments.DELETE("/:id", dc.DeleteDepartment)
		departments.GET("/:id", dc.GetDepartment)
		departments.GET("", dc.ListDepartments)
	}
}

// CreateDepartment endpoint
func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	var req model.DepartmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", ems_errors.ErrInvalidDepartmentData)
		return
	}
	principal := util.GetPrincipal(c)
	if principal == nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", ems_errors.ErrUnauthorized)
		return
	}

	createdDept, err := dc.departmentService.CreateDepartment(c, req, principal.Email)
	if err != nil {
		switch err {
		case ems_errors.ErrDepartmentCodeExists:
			util.RespondWithError(c, http.StatusConflict, "Department code already in use", err)
		case ems_errors.ErrDepartmentNameExists:
			util.RespondWithError(c, http.StatusConflict, "Department name already in use", err)
		case ems_errors.ErrInvalidDepartmentData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", err)
		case ems_errors.ErrDatabaseOperation:
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create department", ems_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, createdDept)
}

// UpdateDepartment endpoint
func (dc *DepartmentController) UpdateDepartment(c *gin.Context) {
	deptID, err := parseIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department id", err)
		return
	}
	var req model.DepartmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", err)
		return
	}
	principal := util.GetPrincipal(c)
	if principal == nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", ems_errors.ErrUnauthorized)
		return
	}

	updatedDept, err := dc.departmentService.UpdateDepartment(c, deptID, req, principal.Email)
	if err != nil {
		switch err {
		case ems_errors.ErrDepartmentNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Department not found", err)
		case ems_errors.ErrDepartmentNameExists:
			util.RespondWithError(c, http.StatusConflict, "Department name already in use", err)
		case ems_errors.ErrInvalidDepartmentData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update department", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedDept)
}

// DeleteDepartment endpoint
func (dc *DepartmentController) DeleteDepartment(c *gin.Context) {
	deptID, err := parseIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department id", err)
		return
	}
	principal := util.GetPrincipal(c)
	if principal == nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", ems_errors.ErrUnauthorized)
		return
	}

	if err := dc.departmentService.DeleteDepartment(c, deptID, principal.Email); err != nil {
		switch err {
		case ems_errors.ErrDepartmentNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Department not found", err)
		case ems_errors.ErrDepartmentHasEmployees:
			util.RespondWithError(c, http.StatusConflict, "Department still has employees", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete department", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDepartment endpoint
func (dc *DepartmentController) GetDepartment(c *gin.Context) {
	deptID, err := parseIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department id", err)
		return
	}

	dept, err := dc.departmentService.GetDepartment(c, deptID)
	if err != nil {
		if err == ems_errors.ErrDepartmentNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Department not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve department", err)
		}
		return
	}

	c.JSON(http.StatusOK, dept)
}

// ListDepartments endpoint
func (dc *DepartmentController) ListDepartments(c *gin.Context) {
	depts, err := dc.departmentService.ListDepartments(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list departments", err)
		return
	}

	c.JSON(http.StatusOK, depts)
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
