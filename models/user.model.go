package models

import (
	"gorm.io/gorm"
)

const (
	RoleStaff = "Staff"
	RoleAdmin = "Admin"
)

type User struct {
	gorm.Model
	Username string `gorm:"unique;not null" json:"username"`
	Name     string `gorm:"default:''" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Role     string `gorm:"default:'Staff'" json:"role"` // Staff or Admin
	Password string `gorm:"not null" json:"-"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// DisplayName falls back to the username when no full name is set.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
