// errors/employee_errors.go
package errors

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeEmailExists = errors.New("employee email already exists")
	ErrInvalidEmployeeData = errors.New("invalid employee data")
)
