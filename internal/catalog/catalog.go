package catalog

// Catalog entities are a read-only static data source. Reducers and pricing
// consume them as lookup tables and never mutate them.

type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Image         string        `json:"image"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

type Product struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Images       []string          `json:"images"`
	Price        float64           `json:"price"`
	MRP          float64           `json:"mrp"`
	Category     string            `json:"category"` // category slug
	Brand        string            `json:"brand"`
	Rating       float64           `json:"rating"`
	ReviewsCount int               `json:"reviewsCount"`
	InStock      bool              `json:"inStock"`
	Attributes   map[string]string `json:"attributes"`
	Tags         []string          `json:"tags,omitempty"`
}

// DiscountPercent derives the list-price discount used by the discount filter.
func (p Product) DiscountPercent() float64 {
	if p.MRP <= 0 || p.Price >= p.MRP {
		return 0
	}
	return (p.MRP - p.Price) / p.MRP * 100
}

type Review struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Author    string  `json:"author"`
	Rating    float64 `json:"rating"`
	Title     string  `json:"title"`
	Comment   string  `json:"comment"`
	Date      string  `json:"date"`
}

type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFlat       CouponType = "flat"
	CouponShipping   CouponType = "shipping"
)

type Coupon struct {
	Code        string     `json:"code"`
	Type        CouponType `json:"type"`
	Value       float64    `json:"value"`
	Description string     `json:"description"`
}

type Banner struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Link        string `json:"link"`
}
