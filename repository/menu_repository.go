package repository

import (
	"time"

	"campuseats-be/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// Categories with their items, sibling-ordered at both levels.
// activeOnly filters categories by is_active; item availability is a
// displayed attribute and never filters.
func (r *MenuRepository) Categories(activeOnly bool) ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	q := r.DB.Scopes(orderSiblings).
		Preload("Items", orderSiblings)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) FindCategoryByID(id uint) (*entity.MenuCategory, error) {
	var cat entity.MenuCategory
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) FindItemByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Preload("PoolLinks", orderLinks).
		Preload("PoolLinks.Pool").
		Preload("PoolLinks.Pool.Options", orderSiblings).
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// PoolLinksForItem returns the item's pool links with pools and options
// preloaded, sibling-ordered.
func (r *MenuRepository) PoolLinksForItem(itemID uint) ([]entity.MenuItemPool, error) {
	var links []entity.MenuItemPool
	err := r.DB.Where("menu_item_id = ?", itemID).
		Scopes(orderLinks).
		Preload("Pool").
		Preload("Pool.Options", orderSiblings).
		Find(&links).Error
	return links, err
}

// AllPoolLinks loads every pool link with pool and options preloaded,
// for one-pass menu assembly (grouped by item id in the service).
func (r *MenuRepository) AllPoolLinks() ([]entity.MenuItemPool, error) {
	var links []entity.MenuItemPool
	err := r.DB.Scopes(orderLinks).
		Preload("Pool").
		Preload("Pool.Options", orderSiblings).
		Find(&links).Error
	return links, err
}

func (r *MenuRepository) CreateCategory(c *entity.MenuCategory) error {
	return r.DB.Create(c).Error
}

func (r *MenuRepository) UpdateCategory(c *entity.MenuCategory) error {
	return r.DB.Save(c).Error
}

func (r *MenuRepository) CreateItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) UpdateItem(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

// SetItemAvailability flips the flag and stamps updated_at. Returns
// gorm.ErrRecordNotFound when the item does not exist.
func (r *MenuRepository) SetItemAvailability(itemID uint, isAvailable bool) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, itemID).Error; err != nil {
		return nil, err
	}
	item.IsAvailable = isAvailable
	item.UpdatedAt = time.Now()
	if err := r.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CategoryIDs / ItemIDsInCategory support strict reorder validation.
func (r *MenuRepository) CategoryIDs() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.MenuCategory{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *MenuRepository) ItemIDsInCategory(categoryID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.MenuItem{}).
		Where("category_id = ?", categoryID).Pluck("id", &ids).Error
	return ids, err
}

func (r *MenuRepository) SetCategoryOrder(tx *gorm.DB, id uint, order int) error {
	return tx.Model(&entity.MenuCategory{}).Where("id = ?", id).
		Update("display_order", order).Error
}

func (r *MenuRepository) SetItemOrder(tx *gorm.DB, id uint, order int) error {
	return tx.Model(&entity.MenuItem{}).Where("id = ?", id).
		Update("display_order", order).Error
}
