package repository

import (
	"campuseats-be/entity"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByUserID(userID uint) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.Where("user_id = ?", userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) FindByID(id uint) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) List() ([]entity.Admin, error) {
	var admins []entity.Admin
	err := r.DB.Order("created_at ASC").Find(&admins).Error
	return admins, err
}

func (r *AdminRepository) Create(a *entity.Admin) error {
	return r.DB.Create(a).Error
}

func (r *AdminRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Admin{}, id).Error
}
