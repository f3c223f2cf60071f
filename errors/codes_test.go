// errors/codes_test.go
package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	ems_errors "github.com/grootan/ems/api/errors"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ems_errors.ErrInvalidCredentials, "invalid_credentials"},
		{ems_errors.ErrTokenExpired, "token_expired"},
		{ems_errors.ErrDepartmentCodeExists, "department_code_exists"},
		{ems_errors.ErrDepartmentNameExists, "department_name_exists"},
		{ems_errors.ErrDepartmentHasEmployees, "department_has_employees"},
		{ems_errors.ErrEmployeeEmailExists, "employee_email_exists"},
		{ems_errors.ErrEmployeeNotFound, "employee_not_found"},
		{ems_errors.ErrInternalServer, "internal_error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ems_errors.Code(tt.err), "error %v", tt.err)
	}
}

func TestCode_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("%w: department code cannot be empty", ems_errors.ErrInvalidDepartmentData)
	assert.Equal(t, "invalid_department_data", ems_errors.Code(wrapped))
}

func TestCode_UnknownError(t *testing.T) {
	assert.Equal(t, "", ems_errors.Code(fmt.Errorf("something else")))
}
