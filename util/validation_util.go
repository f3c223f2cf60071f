// util/validation_util.go

package util

import (
	"fmt"
	"strings"

	"github.com/grootan/ems/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateDepartmentCreate(req model.DepartmentCreateRequest) error {
	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("department code cannot be empty")
	}
	if len(req.Code) > 30 {
		return fmt.Errorf("department code cannot exceed 30 characters")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("department name cannot be empty")
	}
	if len(req.Name) > 120 {
		return fmt.Errorf("department name cannot exceed 120 characters")
	}
	return nil
}

func (v *ValidationUtil) ValidateDepartmentUpdate(req model.DepartmentUpdateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("department name cannot be empty")
	}
	if len(req.Name) > 120 {
		return fmt.Errorf("department name cannot exceed 120 characters")
	}
	return nil
}

func (v *ValidationUtil) ValidateEmployeeCreate(req model.EmployeeCreateRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("employee full name cannot be empty")
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("employee email cannot be empty")
	}
	if req.HireDate == "" {
		return fmt.Errorf("employee hire date cannot be empty")
	}
	if req.DepartmentID == 0 {
		return fmt.Errorf("employee department cannot be empty")
	}
	if _, err := model.ParseRole(strings.ToUpper(strings.TrimSpace(req.Role))); err != nil {
		return err
	}
	return nil
}

func (v *ValidationUtil) ValidateEmployeeUpdate(req model.EmployeeUpdateRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("employee full name cannot be empty")
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("employee email cannot be empty")
	}
	if req.HireDate == "" {
		return fmt.Errorf("employee hire date cannot be empty")
	}
	if req.DepartmentID == 0 {
		return fmt.Errorf("employee department cannot be empty")
	}
	return nil
}
