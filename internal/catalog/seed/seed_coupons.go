package seed

import "github.com/dev-dotsquares/ecommerce/internal/catalog"

func Coupons() []catalog.Coupon {
	return []catalog.Coupon{
		{
			Code:        "SAVE10",
			Type:        catalog.CouponPercentage,
			Value:       10,
			Description: "10% off your order",
		},
		{
			Code:        "FLAT50",
			Type:        catalog.CouponFlat,
			Value:       50,
			Description: "Flat 50 off your order",
		},
		{
			Code:        "FREESHIP",
			Type:        catalog.CouponShipping,
			Value:       0,
			Description: "Free shipping on your order",
		},
	}
}

func Banners() []catalog.Banner {
	return []catalog.Banner{
		{
			ID:          "banner-season-sale",
			Title:       "Season Sale",
			Description: "Up to 40% off across electronics",
			ImageURL:    "https://images.shopsphere.dev/banners/season-sale.jpg",
			Link:        "/search?discount=20",
		},
		{
			ID:          "banner-new-arrivals",
			Title:       "New Arrivals",
			Description: "Fresh picks for the outdoors",
			ImageURL:    "https://images.shopsphere.dev/banners/new-arrivals.jpg",
			Link:        "/search?q=outdoors",
		},
	}
}
