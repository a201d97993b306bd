package entity

import (
	"gorm.io/gorm"
)

// Exactly one active cart per user.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
