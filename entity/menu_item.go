package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	CategoryID uint         `gorm:"index;not null" json:"categoryId"`
	Category   MenuCategory `gorm:"foreignKey:CategoryID" json:"-"`

	Code   *string `gorm:"size:32" json:"code,omitempty"`
	NameEn string  `gorm:"not null" json:"nameEn"`
	NameMm string  `json:"nameMm"`

	// minor currency units (kyat)
	Price int64 `gorm:"not null" json:"price"`

	IsAvailable   bool   `gorm:"not null" json:"isAvailable"`
	IsRecommended bool   `gorm:"not null" json:"isRecommended"`
	DisplayOrder  int    `gorm:"not null;default:0" json:"displayOrder"`
	ImageURL      string `json:"imageUrl"`

	// pools linked through menu_item_pools; the link row carries its own sort order
	PoolLinks []MenuItemPool `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE;" json:"poolLinks,omitempty"`
}
