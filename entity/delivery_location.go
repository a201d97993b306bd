package entity

import (
	"gorm.io/gorm"
)

type DeliveryLocation struct {
	gorm.Model
	// derived from condo name, numeric suffix on collision
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	CondoName string `gorm:"not null" json:"condoName"`
	Area      string `json:"area"`

	// fee bounds in minor units, MinFee <= MaxFee enforced at validation
	MinFee int64 `gorm:"not null" json:"minFee"`
	MaxFee int64 `gorm:"not null" json:"maxFee"`

	IsActive     bool `gorm:"not null" json:"isActive"`
	DisplayOrder int  `gorm:"not null;default:0" json:"displayOrder"`

	Buildings []DeliveryBuilding `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE;" json:"buildings"`
}

type DeliveryBuilding struct {
	gorm.Model
	LocationID   uint   `gorm:"index;not null" json:"locationId"`
	Label        string `gorm:"not null" json:"label"`
	DisplayOrder int    `gorm:"not null;default:0" json:"displayOrder"`
}
