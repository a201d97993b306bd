package entity

import (
	"gorm.io/gorm"
)

type ChoicePoolOption struct {
	gorm.Model
	PoolID uint       `gorm:"index;not null" json:"poolId"`
	Pool   ChoicePool `gorm:"foreignKey:PoolID" json:"-"`

	Code   *string `gorm:"size:32" json:"code,omitempty"`
	NameEn string  `gorm:"not null" json:"nameEn"`
	NameMm string  `json:"nameMm"`

	// added on top of the base item price
	PriceDelta int64 `gorm:"not null;default:0" json:"priceDelta"`

	IsAvailable  bool `gorm:"not null" json:"isAvailable"`
	DisplayOrder int  `gorm:"not null;default:0" json:"displayOrder"`
}
