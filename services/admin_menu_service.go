package services

import (
	"context"
	"errors"
	"strings"

	"campuseats-be/entity"
	"campuseats-be/pkg/cache"
	"campuseats-be/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminMenuService holds every menu mutation. Each successful mutation
// invalidates the public-menu cache tag so the storefront observes the
// change before the TTL backstop.
type AdminMenuService struct {
	DB    *gorm.DB
	Menus *repository.MenuRepository
	Pools *repository.PoolRepository
	Cache *cache.TagCache
	Hub   Notifier
	Log   *zap.Logger
}

func NewAdminMenuService(db *gorm.DB, menus *repository.MenuRepository, pools *repository.PoolRepository, c *cache.TagCache, hub Notifier, log *zap.Logger) *AdminMenuService {
	return &AdminMenuService{DB: db, Menus: menus, Pools: pools, Cache: c, Hub: hub, Log: log}
}

// invalidate is fire-and-forget after the write commits; a lost signal
// heals within the cache TTL.
func (s *AdminMenuService) invalidate(ctx context.Context) {
	if err := s.Cache.InvalidateTag(ctx, PublicMenuTag); err != nil {
		s.Log.Warn("public menu invalidation failed", zap.Error(err))
	}
	if s.Hub != nil {
		s.Hub.Broadcast("menu", "refresh")
	}
}

// --- create ---

type CreateCategoryIn struct {
	NameEn       string `json:"nameEn" binding:"required"`
	NameMm       string `json:"nameMm"`
	DisplayOrder int    `json:"displayOrder"`
}

func (s *AdminMenuService) CreateCategory(ctx context.Context, in CreateCategoryIn) (*entity.MenuCategory, error) {
	cat := &entity.MenuCategory{
		NameEn:       strings.TrimSpace(in.NameEn),
		NameMm:       strings.TrimSpace(in.NameMm),
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
	}
	if err := s.Menus.CreateCategory(cat); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return cat, nil
}

type CreateItemIn struct {
	CategoryID   uint    `json:"categoryId" binding:"required"`
	Code         *string `json:"code"`
	NameEn       string  `json:"nameEn" binding:"required"`
	NameMm       string  `json:"nameMm"`
	Price        int64   `json:"price" binding:"min=0"`
	DisplayOrder int     `json:"displayOrder"`
	ImageURL     string  `json:"imageUrl"`
}

func (s *AdminMenuService) CreateItem(ctx context.Context, in CreateItemIn) (*entity.MenuItem, error) {
	if _, err := s.Menus.FindCategoryByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	item := &entity.MenuItem{
		CategoryID:   in.CategoryID,
		Code:         in.Code,
		NameEn:       strings.TrimSpace(in.NameEn),
		NameMm:       strings.TrimSpace(in.NameMm),
		Price:        in.Price,
		IsAvailable:  true,
		DisplayOrder: in.DisplayOrder,
		ImageURL:     in.ImageURL,
	}
	if err := s.Menus.CreateItem(item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

type CreatePoolIn struct {
	NameEn       string `json:"nameEn" binding:"required"`
	NameMm       string `json:"nameMm"`
	DisplayOrder int    `json:"displayOrder"`
}

func (s *AdminMenuService) CreatePool(ctx context.Context, in CreatePoolIn) (*entity.ChoicePool, error) {
	pool := &entity.ChoicePool{
		NameEn:       strings.TrimSpace(in.NameEn),
		NameMm:       strings.TrimSpace(in.NameMm),
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
	}
	if err := s.Pools.Create(pool); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return pool, nil
}

type CreateOptionIn struct {
	Code         *string `json:"code"`
	NameEn       string  `json:"nameEn" binding:"required"`
	NameMm       string  `json:"nameMm"`
	PriceDelta   int64   `json:"priceDelta"`
	DisplayOrder int     `json:"displayOrder"`
}

func (s *AdminMenuService) CreateOption(ctx context.Context, poolID uint, in CreateOptionIn) (*entity.ChoicePoolOption, error) {
	if _, err := s.Pools.FindByID(poolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if in.PriceDelta < 0 {
		in.PriceDelta = 0
	}
	opt := &entity.ChoicePoolOption{
		PoolID:       poolID,
		Code:         in.Code,
		NameEn:       strings.TrimSpace(in.NameEn),
		NameMm:       strings.TrimSpace(in.NameMm),
		PriceDelta:   in.PriceDelta,
		IsAvailable:  true,
		DisplayOrder: in.DisplayOrder,
	}
	if err := s.Pools.CreateOption(opt); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return opt, nil
}

// --- duplicate ---

type DuplicatePoolIn struct {
	NameEn string `json:"nameEn" binding:"required"`
	NameMm string `json:"nameMm"`
}

// DuplicatePool copies the pool and all its options under the
// caller-supplied names.
func (s *AdminMenuService) DuplicatePool(ctx context.Context, srcID uint, in DuplicatePoolIn) (*entity.ChoicePool, error) {
	src, err := s.Pools.FindByID(srcID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	dup := &entity.ChoicePool{
		NameEn:       strings.TrimSpace(in.NameEn),
		NameMm:       strings.TrimSpace(in.NameMm),
		IsActive:     true,
		DisplayOrder: src.DisplayOrder,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dup).Error; err != nil {
			return err
		}
		for _, o := range src.Options {
			copied := entity.ChoicePoolOption{
				PoolID:       dup.ID,
				Code:         o.Code,
				NameEn:       o.NameEn,
				NameMm:       o.NameMm,
				PriceDelta:   o.PriceDelta,
				IsAvailable:  o.IsAvailable,
				DisplayOrder: o.DisplayOrder,
			}
			if err := tx.Create(&copied).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.Pools.FindByID(dup.ID)
}

// --- reorder ---

// sameIDSet: strict reorder contract, the submitted set must exactly
// match the scope's members.
func sameIDSet(submitted, existing []uint) bool {
	if len(submitted) != len(existing) {
		return false
	}
	seen := make(map[uint]bool, len(submitted))
	for _, id := range submitted {
		if seen[id] {
			return false // duplicate submission
		}
		seen[id] = true
	}
	for _, id := range existing {
		if !seen[id] {
			return false
		}
	}
	return true
}

func (s *AdminMenuService) ReorderPools(ctx context.Context, ids []uint) error {
	existing, err := s.Pools.PoolIDs()
	if err != nil {
		return err
	}
	if !sameIDSet(ids, existing) {
		return ErrScopeMismatch
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := s.Pools.SetPoolOrder(tx, id, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *AdminMenuService) ReorderOptions(ctx context.Context, poolID uint, ids []uint) error {
	if _, err := s.Pools.FindByID(poolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	existing, err := s.Pools.OptionIDsInPool(poolID)
	if err != nil {
		return err
	}
	if !sameIDSet(ids, existing) {
		return ErrScopeMismatch
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := s.Pools.SetOptionOrder(tx, id, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *AdminMenuService) ReorderCategories(ctx context.Context, ids []uint) error {
	existing, err := s.Menus.CategoryIDs()
	if err != nil {
		return err
	}
	if !sameIDSet(ids, existing) {
		return ErrScopeMismatch
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := s.Menus.SetCategoryOrder(tx, id, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *AdminMenuService) ReorderItems(ctx context.Context, categoryID uint, ids []uint) error {
	if _, err := s.Menus.FindCategoryByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	existing, err := s.Menus.ItemIDsInCategory(categoryID)
	if err != nil {
		return err
	}
	if !sameIDSet(ids, existing) {
		return ErrScopeMismatch
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := s.Menus.SetItemOrder(tx, id, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// --- toggle / delete / link ---

func (s *AdminMenuService) ToggleItemAvailability(ctx context.Context, itemID uint, isAvailable bool) (*entity.MenuItem, error) {
	item, err := s.Menus.SetItemAvailability(itemID, isAvailable)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *AdminMenuService) DeleteOption(ctx context.Context, optionID uint) error {
	affected, err := s.Pools.DeleteOption(optionID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *AdminMenuService) LinkPool(ctx context.Context, itemID, poolID uint, displayOrder int) (*entity.MenuItemPool, error) {
	if _, err := s.Menus.FindItemByID(itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.Pools.FindByID(poolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	link := &entity.MenuItemPool{MenuItemID: itemID, PoolID: poolID, DisplayOrder: displayOrder}
	if err := s.Pools.CreateLink(link); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return link, nil
}

func (s *AdminMenuService) UnlinkPool(ctx context.Context, itemID, poolID uint) error {
	affected, err := s.Pools.DeleteLink(itemID, poolID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

// --- update (admin edit forms) ---

type UpdateCategoryIn struct {
	NameEn   *string `json:"nameEn"`
	NameMm   *string `json:"nameMm"`
	IsActive *bool   `json:"isActive"`
}

func (s *AdminMenuService) UpdateCategory(ctx context.Context, id uint, in UpdateCategoryIn) (*entity.MenuCategory, error) {
	cat, err := s.Menus.FindCategoryByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if in.NameEn != nil {
		cat.NameEn = strings.TrimSpace(*in.NameEn)
	}
	if in.NameMm != nil {
		cat.NameMm = strings.TrimSpace(*in.NameMm)
	}
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}
	if err := s.Menus.UpdateCategory(cat); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return cat, nil
}

type UpdateItemIn struct {
	NameEn        *string `json:"nameEn"`
	NameMm        *string `json:"nameMm"`
	Price         *int64  `json:"price"`
	ImageURL      *string `json:"imageUrl"`
	IsRecommended *bool   `json:"isRecommended"`
}

func (s *AdminMenuService) UpdateItem(ctx context.Context, id uint, in UpdateItemIn) (*entity.MenuItem, error) {
	item, err := s.Menus.FindItemByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if in.NameEn != nil {
		item.NameEn = strings.TrimSpace(*in.NameEn)
	}
	if in.NameMm != nil {
		item.NameMm = strings.TrimSpace(*in.NameMm)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, ErrInvalidPrice
		}
		item.Price = *in.Price
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if in.IsRecommended != nil {
		item.IsRecommended = *in.IsRecommended
	}
	if err := s.Menus.UpdateItem(item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}
