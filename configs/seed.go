package configs

import (
	"log"
	"time"

	"campuseats-be/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSuperAdmin creates the first super admin from env the first time
// the process runs against a fresh database.
func SeedSuperAdmin(db *gorm.DB) error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := entity.User{Email: email, Password: string(hash), Name: "Super Admin"}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	admin := entity.Admin{
		UserID:      user.ID,
		Email:       email,
		DisplayName: "Super Admin",
		Role:        entity.RoleSuperAdmin,
		IsActive:    true,
	}
	return db.Create(&admin).Error
}

// SeedShopSetting ensures the singleton row exists so reads never 404.
func SeedShopSetting(db *gorm.DB) error {
	setting := entity.ShopSetting{
		Key:       entity.ShopSettingKey,
		IsOpen:    true,
		UpdatedAt: time.Now(),
	}
	return db.Where(entity.ShopSetting{Key: entity.ShopSettingKey}).
		FirstOrCreate(&setting).Error
}
