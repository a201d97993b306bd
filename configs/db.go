package configs

import (
	"campuseats-be/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.Admin{}, &entity.PasswordReset{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.ChoicePool{}, &entity.ChoicePoolOption{}, &entity.MenuItemPool{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemSelection{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{},
		&entity.Payment{},
		&entity.DeliveryLocation{}, &entity.DeliveryBuilding{},
		&entity.ShopSetting{},
	)
}
