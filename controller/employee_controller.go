// api/controller/employee_controller.go
package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	ems_errors "github.com/grootan/ems/api/errors"
	"github.com/grootan/ems/api/model"
	"github.com/grootan/ems/api/service"
	"github.com/grootan/ems/api/util"
	helper_util "github.com/grootan/ems/api/util/helper"
)

type EmployeeController struct {
	employeeService service.IEmployeeService
}

func NewEmployeeController(employeeService service.IEmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// RegisterRoutes registers the API routes
func (ec *EmployeeController) RegisterRoutes(r *gin.Engine) {
	employees := r.Group("/api/employees")
	{
		employees.POST("", ec.CreateEmployee)
		employees.PUT("/:id", ec.UpdateEmployee)
		employees.DELETE("/:id", ec.DeleteEmployee)
		employees.GET("/:id", ec.GetEmployee)
		employees.GET("", ec.SearchEmployees)
	}
}

// CreateEmployee endpoint
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req model.EmployeeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee data", ems_errors.ErrInvalidEmployeeData)
		return
	}
	principal := util.GetPrincipal(c)
	if principal == nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", ems_errors.ErrUnauthorized)
		return
	}

	createdEmp, err := ec.employeeService.CreateEmployee(c, req, principal.Email)
	if err != nil {
		switch err {
		case ems_errors.ErrEmployeeEmailExists:
			util.RespondWithError(c, http.StatusConflict, "Employee email already in use", err)
		case ems_errors.ErrDepartmentNotFound:
			util.RespondWithError(c, http.StatusBadRequest, "Department does not exist", err)
		case ems_errors.ErrInvalidEmployeeData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid employee data", err)
		case ems_errors.ErrDatabaseOperation:
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create employee", ems_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, createdEmp)
}

// UpdateEmployee endpoint
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	empID, err := parseIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee id", err)
		return
	}
	var req model.EmployeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee data", err)
		return
	}
	principal := util.GetPrincipal(c)
	if principal == nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", ems_errors.ErrUnauthorized)
		return
	}

	updatedEmp, err := ec.employeeService.UpdateEmployee(c, empID, req, principal.Email)
	if err != nil {
		switch err {
		case ems_errors.ErrEmployeeNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Employee not found", err)
		case ems_errors.ErrEmployeeEmailExists:
			util.RespondWithError(c, http.StatusConflict, "Employee email already in use", err)
		case ems_errors.ErrDepartmentNotFound:
			util.RespondWithError(c, http.StatusBadRequest, "Department does not exist", err)
		case ems_errors.ErrInvalidEmployeeData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid employee data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update employee", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedEmp)
}

// DeleteEmployee endpoint
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	empID, err := parseIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee id", err)
		return
	}
	principal := util.GetPrincipal(c)
	if principal == nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", ems_errors.ErrUnauthorized)
		return
	}

	if err := ec.employeeService.DeleteEmployee(c, empID, principal.Email); err != nil {
		if err == ems_errors.ErrEmployeeNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Employee not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete employee", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetEmployee endpoint
func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	empID, err := parseIDParam(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee id", err)
		return
	}

	emp, err := ec.employeeService.GetEmployee(c, empID)
	if err != nil {
		if err == ems_errors.ErrEmployeeNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Employee not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employee", err)
		}
		return
	}

	c.JSON(http.StatusOK, emp)
}

// SearchEmployees endpoint
func (ec *EmployeeController) SearchEmployees(c *gin.Context) {
	page, size, err := helper_util.GetPageParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	criteria := model.EmployeeSearchCriteria{
		Query: strings.TrimSpace(c.Query("q")),
		Page:  page,
		Size:  size,
	}

	if deptParam := c.Query("departmentId"); deptParam != "" {
		deptID, err := strconv.ParseInt(deptParam, 10, 64)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid departmentId parameter", err)
			return
		}
		criteria.DepartmentID = deptID
	}

	if statusParam := c.Query("status"); statusParam != "" {
		status, err := model.ParseEmployeeStatus(statusParam)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid status parameter", err)
			return
		}
		criteria.Status = status
	}

	result, err := ec.employeeService.SearchEmployees(c, criteria)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to search employees", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
