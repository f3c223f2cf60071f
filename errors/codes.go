// errors/codes.go
package errors

import "errors"

// Code maps a sentinel error to its stable machine-readable identifier
// for the API error envelope. Clients dispatch on these, never on the
// human-readable message. Returns "" for errors with no sentinel.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrTokenInvalid):
		return "token_invalid"
	case errors.Is(err, ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrDepartmentNotFound):
		return "department_not_found"
	case errors.Is(err, ErrDepartmentCodeExists):
		return "department_code_exists"
	case errors.Is(err, ErrDepartmentNameExists):
		return "department_name_exists"
	case errors.Is(err, ErrDepartmentHasEmployees):
		return "department_has_employees"
	case errors.Is(err, ErrInvalidDepartmentData):
		return "invalid_department_data"
	case errors.Is(err, ErrEmployeeNotFound):
		return "employee_not_found"
	case errors.Is(err, ErrEmployeeEmailExists):
		return "employee_email_exists"
	case errors.Is(err, ErrInvalidEmployeeData):
		return "invalid_employee_data"
	case errors.Is(err, ErrDatabaseOperation):
		return "database_operation_failed"
	case errors.Is(err, ErrInternalServer):
		return "internal_error"
	default:
		return ""
	}
}
