package entity

import (
	"gorm.io/gorm"
)

// ChoicePool is a reusable named group of selectable options
// (e.g. "Spice Level") attachable to many menu items.
type ChoicePool struct {
	gorm.Model
	NameEn       string `gorm:"not null" json:"nameEn"`
	NameMm       string `json:"nameMm"`
	IsActive     bool   `gorm:"not null" json:"isActive"`
	DisplayOrder int    `gorm:"not null;default:0" json:"displayOrder"`

	Options []ChoicePoolOption `gorm:"foreignKey:PoolID;constraint:OnDelete:CASCADE;" json:"options,omitempty"`
}
