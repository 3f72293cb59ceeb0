package checkout

import "github.com/dev-dotsquares/ecommerce/internal/catalog"

// ==================== REQUEST STRUCTS ====================

type SubmitAddressRequest struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type PlaceOrderRequest struct {
	Method string `json:"method" binding:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type SummaryResponse struct {
	Subtotal      float64         `json:"subtotal"`
	TotalItems    int             `json:"totalItems"`
	Discount      float64         `json:"discount"`
	Shipping      float64         `json:"shipping"`
	Total         float64         `json:"total"`
	AppliedCoupon *catalog.Coupon `json:"appliedCoupon,omitempty"`
}

type StateResponse struct {
	Step         Step             `json:"step"`
	Address      *ShippingAddress `json:"address,omitempty"`
	IsProcessing bool             `json:"isProcessing"`
	Summary      SummaryResponse  `json:"summary"`
}

type OrderResponse struct {
	Message       string          `json:"message"`
	OrderID       string          `json:"orderId"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Address       ShippingAddress `json:"address"`
	Summary       SummaryResponse `json:"summary"`
}
