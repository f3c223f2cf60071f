package model

import "time"

type Department struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"size:30;uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"size:120;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Department) TableName() string {
	return "departments"
}

// DepartmentCreateRequest carries the validated input for a new department.
type DepartmentCreateRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// DepartmentUpdateRequest only allows renaming; codes are immutable.
type DepartmentUpdateRequest struct {
	Name string `json:"name" binding:"required"`
}
