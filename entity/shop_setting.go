package entity

import (
	"time"
)

// ShopSetting is a singleton row keyed by "default". It is the single
// source of truth for the open/closed gate.
type ShopSetting struct {
	Key string `gorm:"primaryKey;size:32" json:"key"`
	// no default tag: gorm omits zero-valued defaulted columns from
	// INSERTs, which would make a false write silently persist true
	IsOpen      bool `gorm:"not null" json:"isOpen"`
	ClosedMsgEn string `json:"closedMsgEn"`
	ClosedMsgMm string `json:"closedMsgMm"`

	UpdatedByAdminID uint      `json:"updatedByAdminId"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

const ShopSettingKey = "default"
