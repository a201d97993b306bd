package services

import "math"

// VAT applied to the food subtotal, percent.
const VatRatePercent = 7

type OrderTotals struct {
	FoodSubtotal  int64 `json:"foodSubtotal"`
	VatAmount     int64 `json:"vatAmount"`
	FoodTotal     int64 `json:"foodTotal"`
	DeliveryFee   int64 `json:"deliveryFee"`
	DiscountTotal int64 `json:"discountTotal"`
	TotalAmount   int64 `json:"totalAmount"`
}

// TotalsInput carries the subtotal plus optional overrides. Nil override
// means "use the default": computed VAT, zero fee, zero discount.
type TotalsInput struct {
	FoodSubtotal  int64
	VatAmount     *int64
	DeliveryFee   *float64
	DiscountTotal *int64
}

// CalculateVatAmount is floor(subtotal * 7 / 100) on the clamped subtotal.
func CalculateVatAmount(foodSubtotal int64) int64 {
	if foodSubtotal < 0 {
		foodSubtotal = 0
	}
	return foodSubtotal * VatRatePercent / 100
}

func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// ComputeOrderTotals derives the full totals record. Pure: same input,
// same output, no side effects. Every monetary field comes out
// non-negative and TotalAmount never goes below zero even when the
// discount exceeds food total plus fee.
func ComputeOrderTotals(in TotalsInput) OrderTotals {
	subtotal := clampNonNegative(in.FoodSubtotal)

	vat := CalculateVatAmount(subtotal)
	if in.VatAmount != nil {
		vat = clampNonNegative(*in.VatAmount)
	}

	var fee int64
	if in.DeliveryFee != nil {
		fee = clampNonNegative(int64(math.Round(*in.DeliveryFee)))
	}

	var discount int64
	if in.DiscountTotal != nil {
		discount = clampNonNegative(*in.DiscountTotal)
	}

	foodTotal := subtotal + vat
	total := foodTotal + fee - discount
	if total < 0 {
		total = 0
	}

	return OrderTotals{
		FoodSubtotal:  subtotal,
		VatAmount:     vat,
		FoodTotal:     foodTotal,
		DeliveryFee:   fee,
		DiscountTotal: discount,
		TotalAmount:   total,
	}
}
