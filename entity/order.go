package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusOpen       = "open"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusDelivering = "delivering"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	// human readable id shown to the customer, e.g. CE-9F21A406
	DisplayID string `gorm:"uniqueIndex;not null" json:"displayId"`
	Status    string `gorm:"not null;default:open" json:"status"`

	FoodSubtotal  int64 `gorm:"not null" json:"foodSubtotal"`
	VatAmount     int64 `gorm:"not null" json:"vatAmount"`
	FoodTotal     int64 `gorm:"not null" json:"foodTotal"`
	DeliveryFee   int64 `gorm:"not null" json:"deliveryFee"`
	DiscountTotal int64 `gorm:"not null" json:"discountTotal"`
	TotalAmount   int64 `gorm:"not null" json:"totalAmount"`

	DeliverySlug string `json:"deliverySlug"`
	Building     string `json:"building"`
	Note         string `json:"note"`

	Items   []OrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"items,omitempty"`
	Payment *Payment    `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
}
