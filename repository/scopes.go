package repository

import (
	"gorm.io/gorm"
)

// Sibling ordering used at every level of the menu tree. id is the
// final tie-break so the sort is total even when display_order and
// created_at collide.
func orderSiblings(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC, created_at ASC, id ASC")
}

// Pool link rows carry no created_at; insertion id is the tie-break.
func orderLinks(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC, id ASC")
}
