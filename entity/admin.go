package entity

import (
	"gorm.io/gorm"
)

const (
	RoleModerator  = "moderator"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Admin struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Email       string `gorm:"not null" json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `gorm:"not null;default:moderator" json:"role"`
	IsActive    bool   `gorm:"not null" json:"isActive"`
}
