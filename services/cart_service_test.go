package services

import (
	"context"
	"testing"

	"campuseats-be/entity"
	"campuseats-be/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartHarness(t *testing.T, shopOpen bool) (*CartService, *entity.User, menuFixture) {
	t.Helper()
	db := newTestDB(t)
	shop := newTestShop(t, db, shopOpen)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db), shop)
	user := seedUser(t, db, "diner@example.com")
	return svc, &user, seedMenu(t, db)
}

func TestCartAddAndSummarize(t *testing.T) {
	svc, user, f := newCartHarness(t, true)
	ctx := context.Background()

	err := svc.Add(ctx, user.ID, &AddToCartIn{
		MenuItemID: f.Item.ID,
		Qty:        2,
		Selections: []SelectionIn{{PoolLinkID: f.Link.ID, OptionID: f.OptLarge.ID}},
	})
	require.NoError(t, err)

	sum, err := svc.Summarize(user.ID)
	require.NoError(t, err)
	require.Len(t, sum.Lines, 1)
	// 3500 base + 500 large, twice
	assert.Equal(t, int64(4000), sum.Lines[0].UnitPrice)
	assert.Equal(t, int64(8000), sum.FoodSubtotal)
	assert.Equal(t, 1, sum.LineCount)
}

func TestCartMergesIdenticalSelections(t *testing.T) {
	svc, user, f := newCartHarness(t, true)
	ctx := context.Background()

	line := &AddToCartIn{
		MenuItemID: f.Item.ID,
		Qty:        1,
		Selections: []SelectionIn{{PoolLinkID: f.Link.ID, OptionID: f.OptSmall.ID}},
	}
	require.NoError(t, svc.Add(ctx, user.ID, line))
	require.NoError(t, svc.Add(ctx, user.ID, line))

	// different configuration gets its own line
	require.NoError(t, svc.Add(ctx, user.ID, &AddToCartIn{
		MenuItemID: f.Item.ID,
		Qty:        1,
		Selections: []SelectionIn{{PoolLinkID: f.Link.ID, OptionID: f.OptLarge.ID}},
	}))

	sum, err := svc.Summarize(user.ID)
	require.NoError(t, err)
	require.Len(t, sum.Lines, 2)
	assert.Equal(t, 2, sum.Lines[0].Qty)
	assert.Equal(t, int64(7000), sum.Lines[0].Total)
}

func TestCartRejectsWhenShopClosed(t *testing.T) {
	svc, user, f := newCartHarness(t, false)
	ctx := context.Background()

	err := svc.Add(ctx, user.ID, &AddToCartIn{MenuItemID: f.Item.ID, Qty: 1})
	require.ErrorIs(t, err, ErrShopClosed)

	var closed *ShopClosedError
	require.ErrorAs(t, err, &closed)
	assert.Equal(t, "We are closed", closed.MsgEn)

	// a closed shop never touches the cart
	sum, err := svc.Summarize(user.ID)
	require.NoError(t, err)
	assert.Empty(t, sum.Lines)
}

func TestCartQuantityBounds(t *testing.T) {
	svc, user, f := newCartHarness(t, true)
	ctx := context.Background()

	for _, qty := range []int{0, -1, MaxQtyPerLine + 1} {
		err := svc.Add(ctx, user.ID, &AddToCartIn{MenuItemID: f.Item.ID, Qty: qty})
		assert.ErrorIs(t, err, ErrInvalidQuantity, "qty %d", qty)
	}

	require.NoError(t, svc.Add(ctx, user.ID, &AddToCartIn{MenuItemID: f.Item.ID, Qty: MaxQtyPerLine}))
}

func TestCartMergeRespectsQuantityCeiling(t *testing.T) {
	svc, user, f := newCartHarness(t, true)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, user.ID, &AddToCartIn{MenuItemID: f.Item.ID, Qty: 15}))

	// two individually valid adds must not stack past the ceiling
	err := svc.Add(ctx, user.ID, &AddToCartIn{MenuItemID: f.Item.ID, Qty: 15})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	sum, err := svc.Summarize(user.ID)
	require.NoError(t, err)
	require.Len(t, sum.Lines, 1)
	assert.Equal(t, 15, sum.Lines[0].Qty, "rejected merge leaves the line unchanged")

	// topping up to exactly the ceiling is fine
	require.NoError(t, svc.Add(ctx, user.ID, &AddToCartIn{MenuItemID: f.Item.ID, Qty: MaxQtyPerLine - 15}))
	sum, err = svc.Summarize(user.ID)
	require.NoError(t, err)
	assert.Equal(t, MaxQtyPerLine, sum.Lines[0].Qty)

	// the same ceiling holds inside a bulk batch, atomically
	err = svc.BulkAdd(ctx, user.ID, &BulkAddIn{Items: []AddToCartIn{{MenuItemID: f.Item.ID, Qty: 1}}})
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCartRejectsForeignSelection(t *testing.T) {
	svc, user, f := newCartHarness(t, true)
	ctx := context.Background()

	// option from another pool, submitted under a valid link
	other := entity.ChoicePool{NameEn: "Toppings", IsActive: true}
	require.NoError(t, svc.DB.Create(&other).Error)
	foreign := entity.ChoicePoolOption{PoolID: other.ID, NameEn: "Egg", PriceDelta: 300, IsAvailable: true}
	require.NoError(t, svc.DB.Create(&foreign).Error)

	err := svc.Add(ctx, user.ID, &AddToCartIn{
		MenuItemID: f.Item.ID,
		Qty:        1,
		Selections: []SelectionIn{{PoolLinkID: f.Link.ID, OptionID: foreign.ID}},
	})
	assert.ErrorIs(t, err, ErrInvalidSelection)

	// unknown pool link
	err = svc.Add(ctx, user.ID, &AddToCartIn{
		MenuItemID: f.Item.ID,
		Qty:        1,
		Selections: []SelectionIn{{PoolLinkID: 9999, OptionID: f.OptSmall.ID}},
	})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestCartBulkAddIsAtomic(t *testing.T) {
	svc, user, f := newCartHarness(t, true)
	ctx := context.Background()

	err := svc.BulkAdd(ctx, user.ID, &BulkAddIn{Items: []AddToCartIn{
		{MenuItemID: f.Item.ID, Qty: 1},
		{MenuItemID: 9999, Qty: 1},
	}})
	require.ErrorIs(t, err, ErrNotFound)

	sum, err := svc.Summarize(user.ID)
	require.NoError(t, err)
	assert.Empty(t, sum.Lines, "failed batch must not leave partial lines")

	require.NoError(t, svc.BulkAdd(ctx, user.ID, &BulkAddIn{Items: []AddToCartIn{
		{MenuItemID: f.Item.ID, Qty: 1},
		{MenuItemID: f.Item.ID, Qty: 2, Selections: []SelectionIn{{PoolLinkID: f.Link.ID, OptionID: f.OptLarge.ID}}},
	}}))
	sum, err = svc.Summarize(user.ID)
	require.NoError(t, err)
	assert.Len(t, sum.Lines, 2)
}

func TestCartUpdateRemoveClear(t *testing.T) {
	svc, user, f := newCartHarness(t, true)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, user.ID, &AddToCartIn{MenuItemID: f.Item.ID, Qty: 1}))
	sum, err := svc.Summarize(user.ID)
	require.NoError(t, err)
	lineID := sum.Lines[0].ID

	require.NoError(t, svc.UpdateQty(user.ID, lineID, 3))
	sum, _ = svc.Summarize(user.ID)
	assert.Equal(t, 3, sum.Lines[0].Qty)
	assert.Equal(t, int64(10500), sum.Lines[0].Total)

	assert.ErrorIs(t, svc.UpdateQty(user.ID, lineID, MaxQtyPerLine+1), ErrInvalidQuantity)

	// qty 0 removes the line
	require.NoError(t, svc.UpdateQty(user.ID, lineID, 0))
	sum, _ = svc.Summarize(user.ID)
	assert.Empty(t, sum.Lines)

	require.NoError(t, svc.Add(ctx, user.ID, &AddToCartIn{MenuItemID: f.Item.ID, Qty: 1}))
	require.NoError(t, svc.Clear(user.ID))
	sum, _ = svc.Summarize(user.ID)
	assert.Empty(t, sum.Lines)
}
