package model

import "time"

// AppUser is the account record backing authentication. Employees get a
// linked account on creation; service operators are seeded directly.
type AppUser struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"size:180;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:30;not null" json:"role"`
	EmployeeID   *int64    `json:"employee_id,omitempty"`
	Enabled      bool      `gorm:"not null;default:true" json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (AppUser) TableName() string {
	return "app_users"
}
