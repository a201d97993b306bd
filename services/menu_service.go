package services

import (
	"context"
	"errors"
	"time"

	"campuseats-be/entity"
	"campuseats-be/pkg/cache"
	"campuseats-be/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// cache tag invalidated by every admin menu mutation
	PublicMenuTag      = "public-menu"
	publicMenuCacheKey = "menu:public"
	publicMenuTTL      = 5 * time.Minute
)

// MenuService assembles the category -> item -> pool link -> option tree
// for both storefront and admin. Ordering at every level is
// (displayOrder ASC, createdAt ASC, id ASC).
type MenuService struct {
	Menus *repository.MenuRepository
	Pools *repository.PoolRepository
	Cache *cache.TagCache
	Log   *zap.Logger
}

func NewMenuService(menus *repository.MenuRepository, pools *repository.PoolRepository, c *cache.TagCache, log *zap.Logger) *MenuService {
	return &MenuService{Menus: menus, Pools: pools, Cache: c, Log: log}
}

// --- public projections ---

type PublicOption struct {
	ID          uint   `json:"id"`
	NameEn      string `json:"nameEn"`
	NameMm      string `json:"nameMm"`
	PriceDelta  int64  `json:"priceDelta"`
	IsAvailable bool   `json:"isAvailable"`
}

type PublicPoolLink struct {
	PoolLinkID uint           `json:"poolLinkId"`
	PoolID     uint           `json:"poolId"`
	NameEn     string         `json:"nameEn"`
	NameMm     string         `json:"nameMm"`
	Options    []PublicOption `json:"options"`
}

type PublicItem struct {
	ID     uint    `json:"id"`
	Code   *string `json:"code,omitempty"`
	NameEn string  `json:"nameEn"`
	NameMm string  `json:"nameMm"`
	Price  int64   `json:"price"`
	// displayed as "out of stock", never filtered out
	IsAvailable   bool             `json:"isAvailable"`
	IsRecommended bool             `json:"isRecommended"`
	ImageURL      string           `json:"imageUrl,omitempty"`
	Pools         []PublicPoolLink `json:"pools"`
}

type PublicCategory struct {
	ID     uint         `json:"id"`
	NameEn string       `json:"nameEn"`
	NameMm string       `json:"nameMm"`
	Items  []PublicItem `json:"items"`
}

type PublicMenu struct {
	Categories []PublicCategory `json:"categories"`
}

// PublicMenu serves the storefront tree from cache when possible. The
// entry carries the public-menu tag so admin mutations can push-expire
// it; the 5 minute TTL is the backstop.
func (s *MenuService) PublicMenu(ctx context.Context) (*PublicMenu, error) {
	var cached PublicMenu
	hit, err := s.Cache.GetJSON(ctx, publicMenuCacheKey, &cached)
	if err != nil {
		s.Log.Warn("public menu cache read failed", zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	menu, err := s.buildPublicMenu()
	if err != nil {
		return nil, err
	}
	if err := s.Cache.SetJSON(ctx, publicMenuCacheKey, menu, publicMenuTTL, PublicMenuTag); err != nil {
		s.Log.Warn("public menu cache write failed", zap.Error(err))
	}
	return menu, nil
}

func (s *MenuService) buildPublicMenu() (*PublicMenu, error) {
	cats, err := s.Menus.Categories(true)
	if err != nil {
		return nil, err
	}
	links, err := s.Menus.AllPoolLinks()
	if err != nil {
		return nil, err
	}
	linksByItem := make(map[uint][]entity.MenuItemPool)
	for _, l := range links {
		linksByItem[l.MenuItemID] = append(linksByItem[l.MenuItemID], l)
	}

	out := &PublicMenu{Categories: make([]PublicCategory, 0, len(cats))}
	for _, cat := range cats {
		pc := PublicCategory{ID: cat.ID, NameEn: cat.NameEn, NameMm: cat.NameMm, Items: []PublicItem{}}
		for _, item := range cat.Items {
			pi := PublicItem{
				ID: item.ID, Code: item.Code,
				NameEn: item.NameEn, NameMm: item.NameMm,
				Price: item.Price, IsAvailable: item.IsAvailable,
				IsRecommended: item.IsRecommended,
				ImageURL:      item.ImageURL,
				Pools:         []PublicPoolLink{},
			}
			for _, l := range linksByItem[item.ID] {
				if !l.Pool.IsActive {
					continue
				}
				pl := PublicPoolLink{
					PoolLinkID: l.ID, PoolID: l.PoolID,
					NameEn: l.Pool.NameEn, NameMm: l.Pool.NameMm,
					Options: []PublicOption{},
				}
				for _, o := range l.Pool.Options {
					pl.Options = append(pl.Options, PublicOption{
						ID: o.ID, NameEn: o.NameEn, NameMm: o.NameMm,
						PriceDelta: o.PriceDelta, IsAvailable: o.IsAvailable,
					})
				}
				pi.Pools = append(pi.Pools, pl)
			}
			pc.Items = append(pc.Items, pi)
		}
		out.Categories = append(out.Categories, pc)
	}
	return out, nil
}

// ItemDetail is the single-item projection for the item page.
func (s *MenuService) ItemDetail(itemID uint) (*PublicItem, error) {
	item, err := s.Menus.FindItemByID(itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	pi := &PublicItem{
		ID: item.ID, Code: item.Code,
		NameEn: item.NameEn, NameMm: item.NameMm,
		Price: item.Price, IsAvailable: item.IsAvailable,
		IsRecommended: item.IsRecommended,
		ImageURL:      item.ImageURL,
		Pools:         []PublicPoolLink{},
	}
	for _, l := range item.PoolLinks {
		if !l.Pool.IsActive {
			continue
		}
		pl := PublicPoolLink{
			PoolLinkID: l.ID, PoolID: l.PoolID,
			NameEn: l.Pool.NameEn, NameMm: l.Pool.NameMm,
			Options: []PublicOption{},
		}
		for _, o := range l.Pool.Options {
			pl.Options = append(pl.Options, PublicOption{
				ID: o.ID, NameEn: o.NameEn, NameMm: o.NameMm,
				PriceDelta: o.PriceDelta, IsAvailable: o.IsAvailable,
			})
		}
		pi.Pools = append(pi.Pools, pl)
	}
	return pi, nil
}

// Recommended projects the flagged items out of the cached tree.
func (s *MenuService) Recommended(menu *PublicMenu) []PublicItem {
	var out []PublicItem
	for _, cat := range menu.Categories {
		for _, item := range cat.Items {
			if item.IsRecommended {
				out = append(out, item)
			}
		}
	}
	return out
}

// AdminMenu returns the full tree, inactive rows included, with raw
// entity fields for mutation targeting. Never cached.
func (s *MenuService) AdminMenu() ([]entity.MenuCategory, []entity.ChoicePool, error) {
	cats, err := s.Menus.Categories(false)
	if err != nil {
		return nil, nil, err
	}
	pools, err := s.Pools.Pools(false)
	if err != nil {
		return nil, nil, err
	}
	return cats, pools, nil
}
