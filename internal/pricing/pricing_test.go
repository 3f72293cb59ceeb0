package pricing_test

import (
	"testing"

	"github.com/dev-dotsquares/ecommerce/internal/cart"
	"github.com/dev-dotsquares/ecommerce/internal/catalog"
	"github.com/dev-dotsquares/ecommerce/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func fixtureItems() []cart.Item {
	return []cart.Item{
		{Product: catalog.Product{ID: "p1", Price: 20}, Quantity: 2},
		{Product: catalog.Product{ID: "p2", Price: 5}, Quantity: 1},
	}
}

func TestCompute_NoCoupon(t *testing.T) {
	summary := pricing.Compute(fixtureItems(), nil)

	assert.Equal(t, "45", summary.Subtotal.String())
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, "0", summary.Discount.String())
	assert.Equal(t, "10", summary.Shipping.String())
	assert.Equal(t, "55", summary.Total.String())
}

func TestCompute_PercentageCoupon(t *testing.T) {
	coupon := &catalog.Coupon{Code: "SAVE10", Type: catalog.CouponPercentage, Value: 10}

	summary := pricing.Compute(fixtureItems(), coupon)

	assert.Equal(t, "4.5", summary.Discount.String())
	assert.Equal(t, "50.5", summary.Total.String())
}

func TestCompute_FlatCoupon(t *testing.T) {
	coupon := &catalog.Coupon{Code: "FLAT20", Type: catalog.CouponFlat, Value: 20}

	summary := pricing.Compute(fixtureItems(), coupon)

	assert.Equal(t, "20", summary.Discount.String())
	assert.Equal(t, "35", summary.Total.String())
}

func TestCompute_ShippingCoupon(t *testing.T) {
	coupon := &catalog.Coupon{Code: "FREESHIP", Type: catalog.CouponShipping, Value: 0}

	summary := pricing.Compute(fixtureItems(), coupon)

	assert.Equal(t, "0", summary.Discount.String())
	assert.Equal(t, "0", summary.Shipping.String())
	assert.Equal(t, "45", summary.Total.String())
}

func TestCompute_EmptyCart(t *testing.T) {
	summary := pricing.Compute(nil, nil)

	assert.Equal(t, 0, summary.TotalItems)
	assert.True(t, summary.Subtotal.IsZero())
	// No shipping fee on an empty cart.
	assert.True(t, summary.Shipping.IsZero())
	assert.True(t, summary.Total.IsZero())
}

func TestCompute_FlatCouponLargerThanSubtotal(t *testing.T) {
	// The flat discount is intentionally unclamped; a negative total is the
	// current behavior, pending a product decision.
	items := []cart.Item{{Product: catalog.Product{ID: "p1", Price: 5}, Quantity: 1}}
	coupon := &catalog.Coupon{Code: "FLAT50", Type: catalog.CouponFlat, Value: 50}

	summary := pricing.Compute(items, coupon)

	assert.Equal(t, "-35", summary.Total.String())
}
