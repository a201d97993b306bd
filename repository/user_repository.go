package repository

import (
	"time"

	"campuseats-be/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) UpdatePassword(userID uint, hashed string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("password", hashed).Error
}

// --- password reset tokens ---

func (r *UserRepository) CreateReset(pr *entity.PasswordReset) error {
	return r.DB.Create(pr).Error
}

// FindValidReset returns the reset row only if unused and unexpired.
func (r *UserRepository) FindValidReset(token string, now time.Time) (*entity.PasswordReset, error) {
	var pr entity.PasswordReset
	err := r.DB.Where("token = ? AND used_at IS NULL AND expires_at > ?", token, now).
		First(&pr).Error
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *UserRepository) MarkResetUsed(id uint, now time.Time) error {
	return r.DB.Model(&entity.PasswordReset{}).Where("id = ?", id).
		Update("used_at", now).Error
}
