package entity

import (
	"gorm.io/gorm"
)

type CartItemSelection struct {
	gorm.Model
	CartItemID uint     `gorm:"index;not null" json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	PoolLinkID uint         `gorm:"not null" json:"poolLinkId"`
	PoolLink   MenuItemPool `gorm:"foreignKey:PoolLinkID" json:"-"`

	OptionID uint             `gorm:"not null" json:"optionId"`
	Option   ChoicePoolOption `gorm:"foreignKey:OptionID" json:"-"`

	PriceDelta int64 `gorm:"not null;default:0" json:"priceDelta"`
}
