package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	NameEn       string `gorm:"not null" json:"nameEn"`
	NameMm       string `json:"nameMm"`
	DisplayOrder int    `gorm:"not null;default:0" json:"displayOrder"`
	IsActive     bool   `gorm:"not null" json:"isActive"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}
