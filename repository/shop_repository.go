package repository

import (
	"campuseats-be/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShopRepository struct {
	DB *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{DB: db}
}

func (r *ShopRepository) Get() (*entity.ShopSetting, error) {
	var s entity.ShopSetting
	err := r.DB.Where("key = ?", entity.ShopSettingKey).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert writes the singleton by its fixed key; idempotent under
// concurrent writers, last write wins.
func (r *ShopRepository) Upsert(s *entity.ShopSetting) error {
	s.Key = entity.ShopSettingKey
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(s).Error
}
