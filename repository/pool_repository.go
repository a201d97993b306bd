package repository

import (
	"campuseats-be/entity"

	"gorm.io/gorm"
)

type PoolRepository struct {
	DB *gorm.DB
}

func NewPoolRepository(db *gorm.DB) *PoolRepository {
	return &PoolRepository{DB: db}
}

func (r *PoolRepository) Pools(activeOnly bool) ([]entity.ChoicePool, error) {
	var pools []entity.ChoicePool
	q := r.DB.Scopes(orderSiblings).
		Preload("Options", orderSiblings)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&pools).Error
	return pools, err
}

func (r *PoolRepository) FindByID(id uint) (*entity.ChoicePool, error) {
	var pool entity.ChoicePool
	err := r.DB.Preload("Options", orderSiblings).First(&pool, id).Error
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

func (r *PoolRepository) Create(p *entity.ChoicePool) error {
	return r.DB.Create(p).Error
}

func (r *PoolRepository) Update(p *entity.ChoicePool) error {
	return r.DB.Save(p).Error
}

func (r *PoolRepository) CreateOption(o *entity.ChoicePoolOption) error {
	return r.DB.Create(o).Error
}

func (r *PoolRepository) FindOptionByID(id uint) (*entity.ChoicePoolOption, error) {
	var o entity.ChoicePoolOption
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PoolRepository) DeleteOption(id uint) (int64, error) {
	res := r.DB.Delete(&entity.ChoicePoolOption{}, id)
	return res.RowsAffected, res.Error
}

func (r *PoolRepository) PoolIDs() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.ChoicePool{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *PoolRepository) OptionIDsInPool(poolID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.ChoicePoolOption{}).
		Where("pool_id = ?", poolID).Pluck("id", &ids).Error
	return ids, err
}

func (r *PoolRepository) SetPoolOrder(tx *gorm.DB, id uint, order int) error {
	return tx.Model(&entity.ChoicePool{}).Where("id = ?", id).
		Update("display_order", order).Error
}

func (r *PoolRepository) SetOptionOrder(tx *gorm.DB, id uint, order int) error {
	return tx.Model(&entity.ChoicePoolOption{}).Where("id = ?", id).
		Update("display_order", order).Error
}

// --- pool links (menu_item_pools) ---

func (r *PoolRepository) CreateLink(l *entity.MenuItemPool) error {
	return r.DB.Create(l).Error
}

func (r *PoolRepository) DeleteLink(itemID, poolID uint) (int64, error) {
	res := r.DB.Where("menu_item_id = ? AND pool_id = ?", itemID, poolID).
		Delete(&entity.MenuItemPool{})
	return res.RowsAffected, res.Error
}

func (r *PoolRepository) FindLinkByID(id uint) (*entity.MenuItemPool, error) {
	var l entity.MenuItemPool
	if err := r.DB.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}
