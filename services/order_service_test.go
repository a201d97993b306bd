package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"campuseats-be/entity"
	"campuseats-be/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderHarness struct {
	Orders *OrderService
	Carts  *CartService
	Hub    *recordingHub
	DB     *gorm.DB
	User   entity.User
	Fix    menuFixture
	Loc    *entity.DeliveryLocation
}

func newOrderHarness(t *testing.T, shopOpen bool) *orderHarness {
	t.Helper()
	db := newTestDB(t)
	shop := newTestShop(t, db, shopOpen)
	hub := &recordingHub{}
	carts := repository.NewCartRepository(db)
	menus := repository.NewMenuRepository(db)
	delivery := repository.NewDeliveryRepository(db)

	h := &orderHarness{
		Orders: NewOrderService(db, repository.NewOrderRepository(db), carts, menus, delivery, shop, hub),
		Carts:  NewCartService(db, carts, menus, shop),
		Hub:    hub,
		DB:     db,
		User:   seedUser(t, db, "diner@example.com"),
		Fix:    seedMenu(t, db),
	}

	dsvc := NewDeliveryService(delivery)
	loc, err := dsvc.Create(CreateLocationIn{CondoName: "ABC Condo", MinFee: 500, MaxFee: 1000})
	require.NoError(t, err)
	h.Loc = loc
	return h
}

func (h *orderHarness) fillCart(t *testing.T) {
	t.Helper()
	require.NoError(t, h.Carts.Add(context.Background(), h.User.ID, &AddToCartIn{
		MenuItemID: h.Fix.Item.ID,
		Qty:        2,
		Selections: []SelectionIn{{PoolLinkID: h.Fix.Link.ID, OptionID: h.Fix.OptLarge.ID}},
	}))
}

func TestCheckout(t *testing.T) {
	h := newOrderHarness(t, true)
	h.fillCart(t)
	ctx := context.Background()

	order, err := h.Orders.Checkout(ctx, h.User.ID, CheckoutIn{
		DeliverySlug: h.Loc.Slug,
		Building:     " Building A ",
		Note:         "less spicy",
	})
	require.NoError(t, err)

	// 2 x (3500 + 500) = 8000 food, vat floor(8000*7/100) = 560
	assert.Equal(t, int64(8000), order.FoodSubtotal)
	assert.Equal(t, int64(560), order.VatAmount)
	assert.Equal(t, int64(8560), order.FoodTotal)
	assert.Equal(t, int64(500), order.DeliveryFee)
	assert.Equal(t, int64(9060), order.TotalAmount)
	assert.Equal(t, entity.OrderStatusOpen, order.Status)
	assert.Equal(t, "Building A", order.Building)
	assert.True(t, strings.HasPrefix(order.DisplayID, "CE-"))
	// hint goes to the owner's topic only, never a shared one
	assert.Contains(t, h.Hub.topics, fmt.Sprintf("orders:%d", h.User.ID))
	assert.NotContains(t, h.Hub.topics, "orders")

	// item and selection names are snapshotted
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Shan Noodles", order.Items[0].NameEn)
	require.Len(t, order.Items[0].Selections, 1)
	assert.Equal(t, "Size", order.Items[0].Selections[0].PoolNameEn)
	assert.Equal(t, "Large", order.Items[0].Selections[0].OptionNameEn)
	assert.Equal(t, int64(500), order.Items[0].Selections[0].PriceDelta)

	// checkout consumes the cart
	sum, err := h.Carts.Summarize(h.User.ID)
	require.NoError(t, err)
	assert.Empty(t, sum.Lines)
}

func TestCheckoutSnapshotSurvivesRename(t *testing.T) {
	h := newOrderHarness(t, true)
	h.fillCart(t)
	ctx := context.Background()

	order, err := h.Orders.Checkout(ctx, h.User.ID, CheckoutIn{DeliverySlug: h.Loc.Slug})
	require.NoError(t, err)

	require.NoError(t, h.DB.Model(&entity.MenuItem{}).
		Where("id = ?", h.Fix.Item.ID).
		Updates(map[string]any{"name_en": "Rebranded", "price": 9999}).Error)

	got, err := h.Orders.Detail(h.User.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shan Noodles", got.Items[0].NameEn)
	assert.Equal(t, int64(4000), got.Items[0].UnitPrice)
}

func TestCheckoutGuards(t *testing.T) {
	t.Run("shop closed", func(t *testing.T) {
		h := newOrderHarness(t, false)
		_, err := h.Orders.Checkout(context.Background(), h.User.ID, CheckoutIn{DeliverySlug: h.Loc.Slug})
		assert.ErrorIs(t, err, ErrShopClosed)
	})

	t.Run("empty cart", func(t *testing.T) {
		h := newOrderHarness(t, true)
		_, err := h.Orders.Checkout(context.Background(), h.User.ID, CheckoutIn{DeliverySlug: h.Loc.Slug})
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("unknown zone", func(t *testing.T) {
		h := newOrderHarness(t, true)
		h.fillCart(t)
		_, err := h.Orders.Checkout(context.Background(), h.User.ID, CheckoutIn{DeliverySlug: "nowhere"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("inactive zone", func(t *testing.T) {
		h := newOrderHarness(t, true)
		h.fillCart(t)
		require.NoError(t, h.DB.Model(&entity.DeliveryLocation{}).
			Where("id = ?", h.Loc.ID).Update("is_active", false).Error)
		_, err := h.Orders.Checkout(context.Background(), h.User.ID, CheckoutIn{DeliverySlug: h.Loc.Slug})
		assert.ErrorIs(t, err, ErrNotFound)

		// the cart is not consumed by a failed checkout
		sum, err := h.Carts.Summarize(h.User.ID)
		require.NoError(t, err)
		assert.Len(t, sum.Lines, 1)
	})
}

func TestCheckoutValidatesBuilding(t *testing.T) {
	h := newOrderHarness(t, true)
	h.fillCart(t)
	ctx := context.Background()

	dsvc := NewDeliveryService(repository.NewDeliveryRepository(h.DB))
	loc, err := dsvc.Create(CreateLocationIn{
		CondoName: "Green Tower",
		MinFee:    500,
		MaxFee:    800,
		Buildings: []string{"Building A", "Building B"},
	})
	require.NoError(t, err)

	_, err = h.Orders.Checkout(ctx, h.User.ID, CheckoutIn{DeliverySlug: loc.Slug, Building: "Building Z"})
	require.ErrorIs(t, err, ErrInvalidPayload)
	_, err = h.Orders.Checkout(ctx, h.User.ID, CheckoutIn{DeliverySlug: loc.Slug})
	require.ErrorIs(t, err, ErrInvalidPayload, "building is mandatory when the location lists buildings")

	order, err := h.Orders.Checkout(ctx, h.User.ID, CheckoutIn{DeliverySlug: loc.Slug, Building: " Building B "})
	require.NoError(t, err)
	assert.Equal(t, "Building B", order.Building)
}

func TestOrderDetailIsOwnerGated(t *testing.T) {
	h := newOrderHarness(t, true)
	h.fillCart(t)
	order, err := h.Orders.Checkout(context.Background(), h.User.ID, CheckoutIn{DeliverySlug: h.Loc.Slug})
	require.NoError(t, err)

	stranger := seedUser(t, h.DB, "other@example.com")
	_, err = h.Orders.Detail(stranger.ID, order.ID)
	assert.ErrorIs(t, err, ErrNotFound, "foreign orders look like missing orders")

	mine, err := h.Orders.ListForUser(h.User.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	theirs, err := h.Orders.ListForUser(stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestOrderStatusTransitions(t *testing.T) {
	h := newOrderHarness(t, true)
	h.fillCart(t)
	order, err := h.Orders.Checkout(context.Background(), h.User.ID, CheckoutIn{DeliverySlug: h.Loc.Slug})
	require.NoError(t, err)

	// open cannot jump straight to delivering or completed
	_, err = h.Orders.UpdateStatus(order.ID, entity.OrderStatusDelivering)
	assert.ErrorIs(t, err, ErrBadTransition)
	_, err = h.Orders.UpdateStatus(order.ID, entity.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrBadTransition)

	for _, to := range []string{
		entity.OrderStatusConfirmed,
		entity.OrderStatusDelivering,
		entity.OrderStatusCompleted,
	} {
		got, err := h.Orders.UpdateStatus(order.ID, to)
		require.NoError(t, err)
		assert.Equal(t, to, got.Status)
		assert.Contains(t, h.Hub.topics, fmt.Sprintf("orders:%d", h.User.ID))
	}

	// completed is terminal
	_, err = h.Orders.UpdateStatus(order.ID, entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrBadTransition)

	_, err = h.Orders.UpdateStatus(9999, entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentLifecycle(t *testing.T) {
	h := newOrderHarness(t, true)
	h.fillCart(t)
	order, err := h.Orders.Checkout(context.Background(), h.User.ID, CheckoutIn{DeliverySlug: h.Loc.Slug})
	require.NoError(t, err)

	p, err := h.Orders.SubmitPayment(h.User.ID, order.ID, SubmitPaymentIn{Method: "kpay", SlipURL: "https://cdn/slip.png"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, p.Status)
	assert.Equal(t, order.TotalAmount, p.Amount)

	// one payment per order
	_, err = h.Orders.SubmitPayment(h.User.ID, order.ID, SubmitPaymentIn{Method: "kpay", SlipURL: "x"})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	verified, err := h.Orders.VerifyPayment(3, p.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusVerified, verified.Status)
	require.NotNil(t, verified.VerifiedByAdminID)
	assert.EqualValues(t, 3, *verified.VerifiedByAdminID)
	assert.NotNil(t, verified.VerifiedAt)

	// verifying an open order confirms it
	got, err := h.Orders.Detail(h.User.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, got.Status)

	// already settled
	_, err = h.Orders.VerifyPayment(3, p.ID, true)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestVerifyPaymentRollsBackWhenConfirmFails(t *testing.T) {
	h := newOrderHarness(t, true)
	h.fillCart(t)
	order, err := h.Orders.Checkout(context.Background(), h.User.ID, CheckoutIn{DeliverySlug: h.Loc.Slug})
	require.NoError(t, err)
	p, err := h.Orders.SubmitPayment(h.User.ID, order.ID, SubmitPaymentIn{Method: "kpay", SlipURL: "x"})
	require.NoError(t, err)

	// pull the order out from under the payment so the confirm step fails
	require.NoError(t, h.DB.Delete(&entity.Order{}, order.ID).Error)

	_, err = h.Orders.VerifyPayment(3, p.ID, true)
	require.Error(t, err)

	// the settle rolled back with the failed confirm
	got, err := h.Orders.Orders.FindPaymentByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, got.Status)
	assert.Nil(t, got.VerifiedByAdminID)
}

func TestVerifyPaymentReject(t *testing.T) {
	h := newOrderHarness(t, true)
	h.fillCart(t)
	order, err := h.Orders.Checkout(context.Background(), h.User.ID, CheckoutIn{DeliverySlug: h.Loc.Slug})
	require.NoError(t, err)
	p, err := h.Orders.SubmitPayment(h.User.ID, order.ID, SubmitPaymentIn{Method: "kpay", SlipURL: "x"})
	require.NoError(t, err)

	rejected, err := h.Orders.VerifyPayment(3, p.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRejected, rejected.Status)

	// a rejected slip does not confirm the order
	got, err := h.Orders.Detail(h.User.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusOpen, got.Status)
}
