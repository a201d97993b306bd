package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"campuseats-be/entity"
	"campuseats-be/repository"

	"gorm.io/gorm"
)

// MaxQtyPerLine caps a single cart line.
const MaxQtyPerLine = 20

type CartService struct {
	DB    *gorm.DB
	Carts *repository.CartRepository
	Menus *repository.MenuRepository
	Shop  *ShopService
}

func NewCartService(db *gorm.DB, carts *repository.CartRepository, menus *repository.MenuRepository, shop *ShopService) *CartService {
	return &CartService{DB: db, Carts: carts, Menus: menus, Shop: shop}
}

type SelectionIn struct {
	PoolLinkID uint `json:"poolLinkId" binding:"required"`
	OptionID   uint `json:"optionId" binding:"required"`
}

type AddToCartIn struct {
	MenuItemID uint          `json:"menuItemId" binding:"required"`
	Qty        int           `json:"quantity" binding:"required"`
	Selections []SelectionIn `json:"selections"`
}

type BulkAddIn struct {
	Items []AddToCartIn `json:"items" binding:"required,min=1,dive"`
}

type CartLineOut struct {
	ID         uint                       `json:"id"`
	MenuItemID uint                       `json:"menuItemId"`
	NameEn     string                     `json:"nameEn"`
	NameMm     string                     `json:"nameMm"`
	Qty        int                        `json:"quantity"`
	UnitPrice  int64                      `json:"unitPrice"`
	Total      int64                      `json:"total"`
	Selections []entity.CartItemSelection `json:"selections"`
}

type CartSummary struct {
	Lines        []CartLineOut `json:"lines"`
	FoodSubtotal int64         `json:"foodSubtotal"`
	LineCount    int           `json:"lineCount"`
}

// selectionsKey canonicalizes selections so identical configurations
// merge into one line regardless of submission order.
func selectionsKey(sels []SelectionIn) string {
	if len(sels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(sels))
	for _, s := range sels {
		parts = append(parts, fmt.Sprintf("%d:%d", s.PoolLinkID, s.OptionID))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

// priceLine validates item and selection references and returns the
// priced cart row. Selections must name a pool link belonging to the
// item and an option belonging to that link's pool.
func (s *CartService) priceLine(in *AddToCartIn) (*entity.CartItem, error) {
	if in.Qty < 1 || in.Qty > MaxQtyPerLine {
		return nil, ErrInvalidQuantity
	}

	item, err := s.Menus.FindItemByID(in.MenuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	linkByID := make(map[uint]*entity.MenuItemPool, len(item.PoolLinks))
	for i := range item.PoolLinks {
		linkByID[item.PoolLinks[i].ID] = &item.PoolLinks[i]
	}

	unit := item.Price
	selRows := make([]entity.CartItemSelection, 0, len(in.Selections))
	for _, sel := range in.Selections {
		link, ok := linkByID[sel.PoolLinkID]
		if !ok {
			return nil, ErrInvalidSelection
		}
		var opt *entity.ChoicePoolOption
		for i := range link.Pool.Options {
			if link.Pool.Options[i].ID == sel.OptionID {
				opt = &link.Pool.Options[i]
				break
			}
		}
		if opt == nil {
			return nil, ErrInvalidSelection
		}
		unit += opt.PriceDelta
		selRows = append(selRows, entity.CartItemSelection{
			PoolLinkID: sel.PoolLinkID,
			OptionID:   sel.OptionID,
			PriceDelta: opt.PriceDelta,
		})
	}

	return &entity.CartItem{
		MenuItemID:    item.ID,
		Qty:           in.Qty,
		UnitPrice:     unit,
		Total:         unit * int64(in.Qty),
		SelectionsKey: selectionsKey(in.Selections),
		Selections:    selRows,
	}, nil
}

// Add validates and appends (or merges) one line. The shop gate runs
// before anything touches the cart, so a closed shop never mutates it.
func (s *CartService) Add(ctx context.Context, userID uint, in *AddToCartIn) error {
	if _, err := s.Shop.RequireOpen(ctx); err != nil {
		return err
	}
	row, err := s.priceLine(in)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.Carts.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		if err := s.Carts.UpsertLine(tx, cart.ID, row, MaxQtyPerLine); err != nil {
			if errors.Is(err, repository.ErrLineQtyExceeded) {
				return ErrInvalidQuantity
			}
			return err
		}
		return nil
	})
}

// BulkAdd applies the whole batch or none of it: every line is priced
// and validated before the transaction opens, and the inserts share one
// transaction.
func (s *CartService) BulkAdd(ctx context.Context, userID uint, in *BulkAddIn) error {
	if _, err := s.Shop.RequireOpen(ctx); err != nil {
		return err
	}

	rows := make([]*entity.CartItem, 0, len(in.Items))
	for i := range in.Items {
		row, err := s.priceLine(&in.Items[i])
		if err != nil {
			return fmt.Errorf("item %d: %w", in.Items[i].MenuItemID, err)
		}
		rows = append(rows, row)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.Carts.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := s.Carts.UpsertLine(tx, cart.ID, row, MaxQtyPerLine); err != nil {
				if errors.Is(err, repository.ErrLineQtyExceeded) {
					return fmt.Errorf("item %d: %w", row.MenuItemID, ErrInvalidQuantity)
				}
				return err
			}
		}
		return nil
	})
}

// Summarize reduces the cart to the storefront summary, which is also
// the input to the totals calculator at checkout.
func (s *CartService) Summarize(userID uint) (*CartSummary, error) {
	cart, err := s.Carts.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}

	out := &CartSummary{Lines: make([]CartLineOut, 0, len(cart.Items))}
	for _, it := range cart.Items {
		out.Lines = append(out.Lines, CartLineOut{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			NameEn:     it.MenuItem.NameEn,
			NameMm:     it.MenuItem.NameMm,
			Qty:        it.Qty,
			UnitPrice:  it.UnitPrice,
			Total:      it.Total,
			Selections: it.Selections,
		})
		out.FoodSubtotal += it.Total
	}
	out.LineCount = len(out.Lines)
	return out, nil
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	if qty > MaxQtyPerLine {
		return ErrInvalidQuantity
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Carts.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveLine(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Carts.RemoveLine(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Carts.ClearCart(tx, userID)
	})
}
