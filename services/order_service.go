package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campuseats-be/entity"
	"campuseats-be/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Orders   *repository.OrderRepository
	Carts    *repository.CartRepository
	Menus    *repository.MenuRepository
	Delivery *repository.DeliveryRepository
	Shop     *ShopService
	Hub      Notifier
}

func NewOrderService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	carts *repository.CartRepository,
	menus *repository.MenuRepository,
	delivery *repository.DeliveryRepository,
	shop *ShopService,
	hub Notifier,
) *OrderService {
	return &OrderService{
		DB: db, Orders: orders, Carts: carts, Menus: menus,
		Delivery: delivery, Shop: shop, Hub: hub,
	}
}

// legal forward transitions; cancel is allowed from any non-terminal state
var orderTransitions = map[string][]string{
	entity.OrderStatusOpen:       {entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
	entity.OrderStatusConfirmed:  {entity.OrderStatusDelivering, entity.OrderStatusCancelled},
	entity.OrderStatusDelivering: {entity.OrderStatusCompleted, entity.OrderStatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, t := range orderTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func newDisplayID() string {
	return "CE-" + strings.ToUpper(uuid.NewString()[:8])
}

// orderTopic scopes order hints to their owner.
func orderTopic(userID uint) string {
	return fmt.Sprintf("orders:%d", userID)
}

type CheckoutIn struct {
	DeliverySlug string `json:"deliverySlug" binding:"required"`
	Building     string `json:"building"`
	Note         string `json:"note"`
}

// Checkout commits the active cart into an order: shop gate, delivery
// zone lookup, totals, then order + item + selection snapshots and the
// cart clear in one transaction.
func (s *OrderService) Checkout(ctx context.Context, userID uint, in CheckoutIn) (*entity.Order, error) {
	if _, err := s.Shop.RequireOpen(ctx); err != nil {
		return nil, err
	}

	cart, err := s.Carts.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	loc, err := s.Delivery.FindBySlug(in.DeliverySlug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !loc.IsActive {
		return nil, ErrNotFound
	}

	// free text only for locations without a configured building list
	building := strings.TrimSpace(in.Building)
	if len(loc.Buildings) > 0 {
		known := false
		for _, b := range loc.Buildings {
			if b.Label == building {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("%w: unknown building %q for %s", ErrInvalidPayload, building, loc.Slug)
		}
	}

	var subtotal int64
	for _, it := range cart.Items {
		subtotal += it.Total
	}
	fee := float64(loc.MinFee)
	totals := ComputeOrderTotals(TotalsInput{
		FoodSubtotal: subtotal,
		DeliveryFee:  &fee,
	})

	order := &entity.Order{
		UserID:        userID,
		DisplayID:     newDisplayID(),
		Status:        entity.OrderStatusOpen,
		FoodSubtotal:  totals.FoodSubtotal,
		VatAmount:     totals.VatAmount,
		FoodTotal:     totals.FoodTotal,
		DeliveryFee:   totals.DeliveryFee,
		DiscountTotal: totals.DiscountTotal,
		TotalAmount:   totals.TotalAmount,
		DeliverySlug:  loc.Slug,
		Building:      building,
		Note:          strings.TrimSpace(in.Note),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.Create(tx, order); err != nil {
			return err
		}
		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				NameEn:     it.MenuItem.NameEn,
				NameMm:     it.MenuItem.NameMm,
				Qty:        it.Qty,
				UnitPrice:  it.UnitPrice,
				Total:      it.Total,
			}
			if err := tx.Create(&oi).Error; err != nil {
				return err
			}
			for _, sel := range it.Selections {
				var opt entity.ChoicePoolOption
				if err := tx.First(&opt, sel.OptionID).Error; err != nil {
					return err
				}
				var pool entity.ChoicePool
				if err := tx.First(&pool, opt.PoolID).Error; err != nil {
					return err
				}
				row := entity.OrderItemSelection{
					OrderItemID:  oi.ID,
					PoolNameEn:   pool.NameEn,
					OptionNameEn: opt.NameEn,
					OptionNameMm: opt.NameMm,
					PriceDelta:   sel.PriceDelta,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return s.Carts.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.Broadcast(orderTopic(order.UserID), order.DisplayID)
	}
	return s.Orders.FindByID(order.ID)
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Orders.ListForUser(userID)
}

// Detail is owner-gated: customers only see their own orders.
func (s *OrderService) Detail(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Orders.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *OrderService) ListByStatus(status string) ([]entity.Order, error) {
	return s.Orders.ListByStatus(status)
}

func (s *OrderService) UpdateStatus(orderID uint, to string) (*entity.Order, error) {
	o, err := s.Orders.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(o.Status, to) {
		return nil, ErrBadTransition
	}
	if err := s.Orders.UpdateStatus(s.DB, orderID, to); err != nil {
		return nil, err
	}
	o.Status = to
	if s.Hub != nil {
		s.Hub.Broadcast(orderTopic(o.UserID), o.DisplayID)
	}
	return o, nil
}

// --- payments ---

type SubmitPaymentIn struct {
	Method  string `json:"method" binding:"required"`
	SlipURL string `json:"slipUrl" binding:"required"`
}

func (s *OrderService) SubmitPayment(userID, orderID uint, in SubmitPaymentIn) (*entity.Payment, error) {
	o, err := s.Detail(userID, orderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Orders.FindPaymentByOrderID(o.ID); err == nil {
		return nil, fmt.Errorf("%w: payment already submitted", ErrInvalidPayload)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p := &entity.Payment{
		OrderID: o.ID,
		Amount:  o.TotalAmount,
		Method:  strings.TrimSpace(in.Method),
		SlipURL: strings.TrimSpace(in.SlipURL),
		Status:  entity.PaymentStatusPending,
	}
	if err := s.Orders.CreatePayment(p); err != nil {
		return nil, err
	}
	return p, nil
}

// VerifyPayment settles a pending payment; approving also confirms an
// open order. Settle and confirm share one transaction, so a failed
// confirm never leaves the payment settled.
func (s *OrderService) VerifyPayment(adminID, paymentID uint, approve bool) (*entity.Payment, error) {
	p, err := s.Orders.FindPaymentByID(paymentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Status != entity.PaymentStatusPending {
		return nil, fmt.Errorf("%w: payment already settled", ErrInvalidPayload)
	}

	now := time.Now()
	p.VerifiedByAdminID = &adminID
	p.VerifiedAt = &now
	if approve {
		p.Status = entity.PaymentStatusVerified
	} else {
		p.Status = entity.PaymentStatusRejected
	}

	var confirmed *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.SavePayment(tx, p); err != nil {
			return err
		}
		if !approve {
			return nil
		}
		var o entity.Order
		if err := tx.First(&o, p.OrderID).Error; err != nil {
			return err
		}
		if o.Status != entity.OrderStatusOpen {
			return nil
		}
		if err := s.Orders.UpdateStatus(tx, o.ID, entity.OrderStatusConfirmed); err != nil {
			return err
		}
		o.Status = entity.OrderStatusConfirmed
		confirmed = &o
		return nil
	})
	if err != nil {
		return nil, err
	}

	if confirmed != nil && s.Hub != nil {
		s.Hub.Broadcast(orderTopic(confirmed.UserID), confirmed.DisplayID)
	}
	return p, nil
}
