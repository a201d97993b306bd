package entity

// MenuItemPool links a choice pool to a menu item. Cart selections
// reference the link id, so the same pool attached twice keeps
// distinct selection slots.
type MenuItemPool struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	MenuItemID   uint       `gorm:"index:idx_item_pool,unique;not null" json:"menuItemId"`
	PoolID       uint       `gorm:"index:idx_item_pool,unique;not null" json:"poolId"`
	Pool         ChoicePool `gorm:"foreignKey:PoolID" json:"pool,omitempty"`
	DisplayOrder int        `gorm:"not null;default:0" json:"displayOrder"`
}
