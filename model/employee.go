package model

import (
	"fmt"
	"time"
)

// EmployeeStatus is the lifecycle state of an employee record.
type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "ACTIVE"
	StatusInactive EmployeeStatus = "INACTIVE"
)

// ParseEmployeeStatus validates a status string supplied by a caller.
func ParseEmployeeStatus(s string) (EmployeeStatus, error) {
	switch EmployeeStatus(s) {
	case StatusActive, StatusInactive:
		return EmployeeStatus(s), nil
	default:
		return "", fmt.Errorf("status must be ACTIVE or INACTIVE, got %q", s)
	}
}

type Employee struct {
	ID           int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName     string         `gorm:"size:120;not null" json:"full_name"`
	Email        string         `gorm:"size:180;uniqueIndex;not null" json:"email"`
	HireDate     time.Time      `gorm:"not null" json:"hire_date"`
	Status       EmployeeStatus `gorm:"size:20;not null;default:ACTIVE" json:"status"`
	DepartmentID int64          `gorm:"not null" json:"department_id"`
	Department   *Department    `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// InitialPassword is only populated on the create response so the
	// operator can hand the generated credential over. Never stored.
	InitialPassword string `gorm:"-" json:"initial_password,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

type EmployeeCreateRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	HireDate     string `json:"hire_date" binding:"required"` // YYYY-MM-DD
	Status       string `json:"status,omitempty"`
	DepartmentID int64  `json:"department_id" binding:"required"`
	Role         string `json:"role" binding:"required"`
}

type EmployeeUpdateRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	HireDate     string `json:"hire_date" binding:"required"`
	Status       string `json:"status,omitempty"`
	DepartmentID int64  `json:"department_id" binding:"required"`
}

// EmployeeSearchCriteria is the full parameter set for a paged search.
// Its canonical cache key covers every field, so two identical searches
// always hit the same entry.
type EmployeeSearchCriteria struct {
	Query        string         `json:"query,omitempty"`
	DepartmentID int64          `json:"department_id,omitempty"`
	Status       EmployeeStatus `json:"status,omitempty"`
	Page         int            `json:"page"`
	Size         int            `json:"size"`
}

// EmployeePage is the paged search result envelope.
type EmployeePage struct {
	Items      []*Employee `json:"items"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	TotalItems int64       `json:"total_items"`
}
