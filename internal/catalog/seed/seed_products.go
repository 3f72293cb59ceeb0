package seed

import "github.com/dev-dotsquares/ecommerce/internal/catalog"

func Categories() []catalog.Category {
	return []catalog.Category{
		{
			ID:    "cat-electronics",
			Name:  "Electronics",
			Slug:  "electronics",
			Image: "https://images.shopsphere.dev/categories/electronics.jpg",
			Subcategories: []catalog.Subcategory{
				{ID: "sub-phones", Name: "Smartphones", Slug: "smartphones"},
				{ID: "sub-audio", Name: "Audio", Slug: "audio"},
				{ID: "sub-wearables", Name: "Wearables", Slug: "wearables"},
			},
		},
		{
			ID:    "cat-fashion",
			Name:  "Fashion",
			Slug:  "fashion",
			Image: "https://images.shopsphere.dev/categories/fashion.jpg",
			Subcategories: []catalog.Subcategory{
				{ID: "sub-shoes", Name: "Shoes", Slug: "shoes"},
				{ID: "sub-apparel", Name: "Apparel", Slug: "apparel"},
			},
		},
		{
			ID:    "cat-home",
			Name:  "Home & Kitchen",
			Slug:  "home-kitchen",
			Image: "https://images.shopsphere.dev/categories/home.jpg",
		},
		{
			ID:    "cat-sports",
			Name:  "Sports & Outdoors",
			Slug:  "sports-outdoors",
			Image: "https://images.shopsphere.dev/categories/sports.jpg",
		},
	}
}

func Products() []catalog.Product {
	return []catalog.Product{
		{
			ID:           "prod-aurora-x1",
			Name:         "Aurora X1 Smartphone",
			Description:  "6.5-inch OLED display, 128GB storage, dual camera.",
			Images:       []string{"https://images.shopsphere.dev/products/aurora-x1-1.jpg", "https://images.shopsphere.dev/products/aurora-x1-2.jpg"},
			Price:        549.00,
			MRP:          649.00,
			Category:     "electronics",
			Brand:        "Aurora",
			Rating:       4.5,
			ReviewsCount: 128,
			InStock:      true,
			Attributes:   map[string]string{"color": "black", "storage": "128GB"},
			Tags:         []string{"bestseller", "5g"},
		},
		{
			ID:           "prod-aurora-x1-blue",
			Name:         "Aurora X1 Smartphone (Blue)",
			Description:  "6.5-inch OLED display, 256GB storage, dual camera.",
			Images:       []string{"https://images.shopsphere.dev/products/aurora-x1-blue.jpg"},
			Price:        599.00,
			MRP:          699.00,
			Category:     "electronics",
			Brand:        "Aurora",
			Rating:       4.4,
			ReviewsCount: 54,
			InStock:      true,
			Attributes:   map[string]string{"color": "blue", "storage": "256GB"},
		},
		{
			ID:           "prod-pulse-buds",
			Name:         "PulseBuds Pro Earbuds",
			Description:  "Active noise cancellation, 30-hour battery with case.",
			Images:       []string{"https://images.shopsphere.dev/products/pulse-buds.jpg"},
			Price:        129.00,
			MRP:          179.00,
			Category:     "electronics",
			Brand:        "Pulse",
			Rating:       4.7,
			ReviewsCount: 342,
			InStock:      true,
			Attributes:   map[string]string{"color": "white"},
			Tags:         []string{"bestseller"},
		},
		{
			ID:           "prod-tempo-watch",
			Name:         "Tempo Fit Smartwatch",
			Description:  "Heart-rate tracking, GPS, 7-day battery life.",
			Images:       []string{"https://images.shopsphere.dev/products/tempo-watch.jpg"},
			Price:        199.00,
			MRP:          249.00,
			Category:     "electronics",
			Brand:        "Tempo",
			Rating:       4.2,
			ReviewsCount: 87,
			InStock:      false,
			Attributes:   map[string]string{"color": "graphite", "band": "silicone"},
		},
		{
			ID:           "prod-strider-runners",
			Name:         "Strider Road Runners",
			Description:  "Lightweight running shoes with responsive cushioning.",
			Images:       []string{"https://images.shopsphere.dev/products/strider-runners.jpg"},
			Price:        89.00,
			MRP:          120.00,
			Category:     "fashion",
			Brand:        "Strider",
			Rating:       4.6,
			ReviewsCount: 215,
			InStock:      true,
			Attributes:   map[string]string{"color": "red", "size": "9"},
			Tags:         []string{"running"},
		},
		{
			ID:           "prod-urban-jacket",
			Name:         "UrbanShield Rain Jacket",
			Description:  "Waterproof breathable shell with packable hood.",
			Images:       []string{"https://images.shopsphere.dev/products/urban-jacket.jpg"},
			Price:        75.00,
			MRP:          75.00,
			Category:     "fashion",
			Brand:        "UrbanShield",
			Rating:       4.1,
			ReviewsCount: 33,
			InStock:      true,
			Attributes:   map[string]string{"color": "navy", "size": "M"},
		},
		{
			ID:           "prod-brewmaster",
			Name:         "BrewMaster Drip Coffee Maker",
			Description:  "12-cup programmable coffee maker with thermal carafe.",
			Images:       []string{"https://images.shopsphere.dev/products/brewmaster.jpg"},
			Price:        64.00,
			MRP:          99.00,
			Category:     "home-kitchen",
			Brand:        "BrewMaster",
			Rating:       4.3,
			ReviewsCount: 167,
			InStock:      true,
			Attributes:   map[string]string{"color": "steel", "capacity": "12-cup"},
		},
		{
			ID:           "prod-chefline-knife",
			Name:         "ChefLine 8-inch Chef Knife",
			Description:  "High-carbon stainless steel blade, full tang handle.",
			Images:       []string{"https://images.shopsphere.dev/products/chefline-knife.jpg"},
			Price:        45.00,
			MRP:          60.00,
			Category:     "home-kitchen",
			Brand:        "ChefLine",
			Rating:       4.8,
			ReviewsCount: 98,
			InStock:      true,
			Attributes:   map[string]string{"blade": "8-inch"},
		},
		{
			ID:           "prod-peak-tent",
			Name:         "PeakView 2-Person Tent",
			Description:  "Three-season tent with quick setup and rainfly.",
			Images:       []string{"https://images.shopsphere.dev/products/peak-tent.jpg"},
			Price:        139.00,
			MRP:          189.00,
			Category:     "sports-outdoors",
			Brand:        "PeakView",
			Rating:       4.4,
			ReviewsCount: 61,
			InStock:      true,
			Attributes:   map[string]string{"capacity": "2-person", "color": "green"},
			Tags:         []string{"camping"},
		},
		{
			ID:           "prod-flow-yoga-mat",
			Name:         "FlowState Yoga Mat",
			Description:  "Non-slip 6mm mat with alignment guides.",
			Images:       []string{"https://images.shopsphere.dev/products/flow-yoga-mat.jpg"},
			Price:        29.00,
			MRP:          39.00,
			Category:     "sports-outdoors",
			Brand:        "FlowState",
			Rating:       4.0,
			ReviewsCount: 145,
			InStock:      false,
			Attributes:   map[string]string{"thickness": "6mm", "color": "purple"},
		},
	}
}
