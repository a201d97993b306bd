package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots the priced cart line at checkout time, so later
// menu edits never rewrite order history.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint   `json:"menuItemId"`
	NameEn     string `json:"nameEn"`
	NameMm     string `json:"nameMm"`

	Qty       int   `gorm:"not null" json:"qty"`
	UnitPrice int64 `gorm:"not null" json:"unitPrice"`
	Total     int64 `gorm:"not null" json:"total"`

	Selections []OrderItemSelection `gorm:"constraint:OnDelete:CASCADE;" json:"selections"`
}
