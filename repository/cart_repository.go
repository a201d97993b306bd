package repository

import (
	"errors"

	"campuseats-be/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetCartWithItems returns the user's cart, or an empty unsaved cart so
// the storefront can render "empty" without a 404.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		Preload("Items.MenuItem").
		Preload("Items.Selections").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ErrLineQtyExceeded reports a merge that would push an existing line
// past the caller's per-line ceiling.
var ErrLineQtyExceeded = errors.New("merged line quantity exceeds ceiling")

// UpsertLine merges into an existing line with the same item and
// selections fingerprint, otherwise appends a new line. The ceiling
// applies to the merged quantity, so repeated valid adds cannot stack
// past it.
func (r *CartRepository) UpsertLine(tx *gorm.DB, cartID uint, row *entity.CartItem, maxQty int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ? AND selections_key = ?",
		cartID, row.MenuItemID, row.SelectionsKey).
		First(&exist).Error
	if err == nil {
		if exist.Qty+row.Qty > maxQty {
			return ErrLineQtyExceeded
		}
		exist.Qty += row.Qty
		exist.Total = int64(exist.Qty) * exist.UnitPrice
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveLine(tx, userID, itemID)
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, total = unit_price * ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, qty, itemID, userID).Error
}

func (r *CartRepository) RemoveLine(tx *gorm.DB, userID, itemID uint) error {
	return tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	var itemIDs []uint
	if err := tx.Model(&entity.CartItem{}).Where("cart_id = ?", c.ID).Pluck("id", &itemIDs).Error; err != nil {
		return err
	}
	if len(itemIDs) > 0 {
		if err := tx.Where("cart_item_id IN ?", itemIDs).Delete(&entity.CartItemSelection{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
