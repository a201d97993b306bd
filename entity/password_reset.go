package entity

import (
	"time"

	"gorm.io/gorm"
)

type PasswordReset struct {
	gorm.Model
	Token  string `gorm:"uniqueIndex;not null" json:"-"`
	UserID uint   `gorm:"index;not null" json:"-"`

	ExpiresAt time.Time  `json:"-"`
	UsedAt    *time.Time `json:"-"`
}
