// errors/department_errors.go
package errors

import "errors"

var (
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrDepartmentCodeExists   = errors.New("department code already exists")
	ErrDepartmentNameExists   = errors.New("department name already exists")
	ErrDepartmentHasEmployees = errors.New("cannot delete department with employees")
	ErrInvalidDepartmentData  = errors.New("invalid department data")
)
