package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index;not null" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `gorm:"index;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty       int   `gorm:"not null" json:"qty"`
	UnitPrice int64 `gorm:"not null" json:"unitPrice"`
	Total     int64 `gorm:"not null" json:"total"`

	// canonical fingerprint of the selections; lines with the same
	// item and fingerprint merge instead of duplicating
	SelectionsKey string `gorm:"index" json:"-"`

	Selections []CartItemSelection `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selections"`
}
