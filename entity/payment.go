package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusVerified = "verified"
	PaymentStatusRejected = "rejected"
)

type Payment struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex;not null" json:"orderId"`
	Order   Order `json:"-"`

	Amount  int64  `gorm:"not null" json:"amount"`
	Method  string `json:"method"`
	SlipURL string `json:"slipUrl"`
	Status  string `gorm:"not null;default:pending" json:"status"`

	VerifiedByAdminID *uint      `json:"verifiedByAdminId,omitempty"`
	VerifiedAt        *time.Time `json:"verifiedAt,omitempty"`
}
