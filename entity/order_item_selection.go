package entity

import (
	"gorm.io/gorm"
)

type OrderItemSelection struct {
	gorm.Model
	OrderItemID uint      `gorm:"index;not null" json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	PoolNameEn   string `json:"poolNameEn"`
	OptionNameEn string `json:"optionNameEn"`
	OptionNameMm string `json:"optionNameMm"`
	PriceDelta   int64  `gorm:"not null;default:0" json:"priceDelta"`
}
