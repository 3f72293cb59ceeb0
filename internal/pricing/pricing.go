package pricing

import (
	"github.com/dev-dotsquares/ecommerce/internal/cart"
	"github.com/dev-dotsquares/ecommerce/internal/catalog"

	"github.com/shopspring/decimal"
)

// ShippingFee is the flat placeholder rate charged on any non-empty order
// without a shipping-waiver coupon. Not a real carrier computation.
var ShippingFee = decimal.NewFromInt(10)

type Summary struct {
	Subtotal   decimal.Decimal
	TotalItems int
	Discount   decimal.Decimal
	Shipping   decimal.Decimal
	Total      decimal.Decimal
}

// Compute derives the order totals from the cart lines and the optionally
// applied coupon. Pure: no lookups, no state.
//
// A flat coupon larger than the subtotal is deliberately not clamped, so the
// total can go negative. That mirrors the current product behavior and is
// tracked as an open pricing question rather than silently corrected here.
func Compute(items []cart.Item, coupon *catalog.Coupon) Summary {
	subtotal := decimal.Zero
	totalItems := 0

	for _, item := range items {
		price := decimal.NewFromFloat(item.Product.Price)
		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal = subtotal.Add(price.Mul(qty))
		totalItems += item.Quantity
	}

	discount := decimal.Zero
	shippingWaived := false
	if coupon != nil {
		switch coupon.Type {
		case catalog.CouponPercentage:
			discount = subtotal.Mul(decimal.NewFromFloat(coupon.Value)).Div(decimal.NewFromInt(100))
		case catalog.CouponFlat:
			discount = decimal.NewFromFloat(coupon.Value)
		case catalog.CouponShipping:
			shippingWaived = true
		}
	}

	shipping := decimal.Zero
	if subtotal.IsPositive() && !shippingWaived {
		shipping = ShippingFee
	}

	return Summary{
		Subtotal:   subtotal,
		TotalItems: totalItems,
		Discount:   discount,
		Shipping:   shipping,
		Total:      subtotal.Sub(discount).Add(shipping),
	}
}
