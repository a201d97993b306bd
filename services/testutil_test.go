package services

import (
	"testing"

	"campuseats-be/entity"
	"campuseats-be/pkg/cache"
	"campuseats-be/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Admin{}, &entity.PasswordReset{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.ChoicePool{}, &entity.ChoicePoolOption{}, &entity.MenuItemPool{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemSelection{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{},
		&entity.Payment{},
		&entity.DeliveryLocation{}, &entity.DeliveryBuilding{},
		&entity.ShopSetting{},
	))
	return db
}

func newTestCache(t *testing.T) (*cache.TagCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.New(client), mr
}

func newTestShop(t *testing.T, db *gorm.DB, isOpen bool) *ShopService {
	t.Helper()
	c, _ := newTestCache(t)
	svc := NewShopService(repository.NewShopRepository(db), c, nil, zap.NewNop())
	require.NoError(t, db.Create(&entity.ShopSetting{
		Key:         entity.ShopSettingKey,
		IsOpen:      isOpen,
		ClosedMsgEn: "We are closed",
		ClosedMsgMm: "ဆိုင်ပိတ်ထားပါသည်",
	}).Error)
	return svc
}

// seedMenu builds one category with one item linked to a two-option
// pool, and returns the created rows.
type menuFixture struct {
	Category entity.MenuCategory
	Item     entity.MenuItem
	Pool     entity.ChoicePool
	Link     entity.MenuItemPool
	OptSmall entity.ChoicePoolOption
	OptLarge entity.ChoicePoolOption
}

func seedMenu(t *testing.T, db *gorm.DB) menuFixture {
	t.Helper()
	var f menuFixture

	f.Category = entity.MenuCategory{NameEn: "Noodles", NameMm: "ခေါက်ဆွဲ", IsActive: true}
	require.NoError(t, db.Create(&f.Category).Error)

	f.Item = entity.MenuItem{
		CategoryID: f.Category.ID, NameEn: "Shan Noodles", NameMm: "ရှမ်းခေါက်ဆွဲ",
		Price: 3500, IsAvailable: true,
	}
	require.NoError(t, db.Create(&f.Item).Error)

	f.Pool = entity.ChoicePool{NameEn: "Size", IsActive: true}
	require.NoError(t, db.Create(&f.Pool).Error)

	f.OptSmall = entity.ChoicePoolOption{PoolID: f.Pool.ID, NameEn: "Small", PriceDelta: 0, IsAvailable: true, DisplayOrder: 0}
	f.OptLarge = entity.ChoicePoolOption{PoolID: f.Pool.ID, NameEn: "Large", PriceDelta: 500, IsAvailable: true, DisplayOrder: 1}
	require.NoError(t, db.Create(&f.OptSmall).Error)
	require.NoError(t, db.Create(&f.OptLarge).Error)

	f.Link = entity.MenuItemPool{MenuItemID: f.Item.ID, PoolID: f.Pool.ID}
	require.NoError(t, db.Create(&f.Link).Error)

	return f
}

func seedUser(t *testing.T, db *gorm.DB, email string) entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", Name: "Test User"}
	require.NoError(t, db.Create(&u).Error)
	return u
}
