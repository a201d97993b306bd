package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func TestCalculateVatAmount(t *testing.T) {
	assert.Equal(t, int64(70), CalculateVatAmount(1000))
	assert.Equal(t, int64(0), CalculateVatAmount(0))
	assert.Equal(t, int64(0), CalculateVatAmount(-500))
	// floor, not round
	assert.Equal(t, int64(6), CalculateVatAmount(99))
}

func TestCalculateVatAmountMonotonic(t *testing.T) {
	prev := int64(-1)
	for s := int64(0); s <= 5000; s += 7 {
		v := CalculateVatAmount(s)
		assert.GreaterOrEqual(t, v, prev, "subtotal %d", s)
		assert.Equal(t, s*7/100, v)
		prev = v
	}
}

func TestComputeOrderTotalsDefaults(t *testing.T) {
	got := ComputeOrderTotals(TotalsInput{FoodSubtotal: 1000})
	assert.Equal(t, int64(1000), got.FoodSubtotal)
	assert.Equal(t, int64(70), got.VatAmount)
	assert.Equal(t, int64(1070), got.FoodTotal)
	assert.Equal(t, int64(0), got.DeliveryFee)
	assert.Equal(t, int64(0), got.DiscountTotal)
	assert.Equal(t, int64(1070), got.TotalAmount)
}

func TestComputeOrderTotalsDiscountClampsToZero(t *testing.T) {
	got := ComputeOrderTotals(TotalsInput{
		FoodSubtotal:  1000,
		DeliveryFee:   f64(50),
		DiscountTotal: i64(2000),
	})
	assert.Equal(t, int64(0), got.TotalAmount)
	assert.Equal(t, int64(2000), got.DiscountTotal)
}

func TestComputeOrderTotalsOverrides(t *testing.T) {
	got := ComputeOrderTotals(TotalsInput{
		FoodSubtotal: 1000,
		VatAmount:    i64(-5), // clamped
		DeliveryFee:  f64(49.6),
	})
	assert.Equal(t, int64(0), got.VatAmount)
	assert.Equal(t, int64(1000), got.FoodTotal)
	assert.Equal(t, int64(50), got.DeliveryFee) // rounded to nearest
	assert.Equal(t, int64(1050), got.TotalAmount)
}

func TestComputeOrderTotalsNegativeSubtotal(t *testing.T) {
	got := ComputeOrderTotals(TotalsInput{FoodSubtotal: -300})
	assert.Equal(t, int64(0), got.FoodSubtotal)
	assert.Equal(t, int64(0), got.TotalAmount)
}

func TestComputeOrderTotalsNeverNegative(t *testing.T) {
	for s := int64(0); s < 3000; s += 111 {
		got := ComputeOrderTotals(TotalsInput{FoodSubtotal: s, DiscountTotal: i64(5000)})
		assert.GreaterOrEqual(t, got.TotalAmount, int64(0), "subtotal %d", s)
	}
}
