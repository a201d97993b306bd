package repository

import (
	"campuseats-be/entity"

	"gorm.io/gorm"
)

type DeliveryRepository struct {
	DB *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) List(activeOnly bool) ([]entity.DeliveryLocation, error) {
	var locs []entity.DeliveryLocation
	q := r.DB.Scopes(orderSiblings).
		Preload("Buildings", orderSiblings)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&locs).Error
	return locs, err
}

func (r *DeliveryRepository) FindBySlug(slug string) (*entity.DeliveryLocation, error) {
	var loc entity.DeliveryLocation
	err := r.DB.Preload("Buildings", orderSiblings).
		Where("slug = ?", slug).First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *DeliveryRepository) FindByID(id uint) (*entity.DeliveryLocation, error) {
	var loc entity.DeliveryLocation
	err := r.DB.Preload("Buildings", orderSiblings).First(&loc, id).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// Create relies on the slug unique index; callers retry with the next
// suffix on gorm.ErrDuplicatedKey.
func (r *DeliveryRepository) Create(loc *entity.DeliveryLocation) error {
	return r.DB.Create(loc).Error
}

func (r *DeliveryRepository) Update(loc *entity.DeliveryLocation) error {
	return r.DB.Save(loc).Error
}

func (r *DeliveryRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.DeliveryLocation{}, id)
	return res.RowsAffected, res.Error
}
