package catalog

import "strings"

// Repository is the read-only lookup surface over the static catalog.
type Repository interface {
	GetProduct(id string) (Product, bool)
	ListProducts() []Product
	ListCategories() []Category
	ListBanners() []Banner
	ListReviews(productID string) []Review
	GetCoupon(code string) (Coupon, bool)
}

type Data struct {
	Products   []Product
	Categories []Category
	Reviews    []Review
	Coupons    []Coupon
	Banners    []Banner
}

type repository struct {
	products      []Product
	productsByID  map[string]Product
	categories    []Category
	banners       []Banner
	reviewsByProd map[string][]Review
	couponsByCode map[string]Coupon
}

func NewRepository(data Data) Repository {
	r := &repository{
		products:      data.Products,
		productsByID:  make(map[string]Product, len(data.Products)),
		categories:    data.Categories,
		banners:       data.Banners,
		reviewsByProd: make(map[string][]Review),
		couponsByCode: make(map[string]Coupon, len(data.Coupons)),
	}

	for _, p := range data.Products {
		r.productsByID[p.ID] = p
	}
	for _, rev := range data.Reviews {
		r.reviewsByProd[rev.ProductID] = append(r.reviewsByProd[rev.ProductID], rev)
	}
	for _, c := range data.Coupons {
		r.couponsByCode[strings.ToUpper(c.Code)] = c
	}

	return r
}

func (r *repository) GetProduct(id string) (Product, bool) {
	p, ok := r.productsByID[id]
	return p, ok
}

func (r *repository) ListProducts() []Product {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *repository) ListCategories() []Category {
	return r.categories
}

func (r *repository) ListBanners() []Banner {
	return r.banners
}

func (r *repository) ListReviews(productID string) []Review {
	return r.reviewsByProd[productID]
}

// GetCoupon matches the code case-insensitively.
func (r *repository) GetCoupon(code string) (Coupon, bool) {
	c, ok := r.couponsByCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}
