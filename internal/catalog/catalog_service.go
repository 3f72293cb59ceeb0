package catalog

import (
	"sort"
	"strings"
)

const pageSize = 12

// ListParams is the opaque filter record carried in the storefront URL
// (q, page, sort, price, brand, rating, discount, stock, attributes.<key>).
type ListParams struct {
	Query       string
	Category    string
	Page        int
	Sort        string
	PriceMin    float64
	PriceMax    float64 // 0 means unbounded
	Brands      []string
	MinRating   float64
	MinDiscount float64
	InStockOnly bool
	Attributes  map[string]string
}

type ListResult struct {
	Products   []Product
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

type Service interface {
	GetProduct(id string) (Product, error)
	ListProducts(params ListParams) ListResult
	ListCategories() []Category
	ListBanners() []Banner
	ListReviews(productID string) []Review
	ResolveCoupon(code string) (Coupon, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	if repo == nil {
		panic("catalog repository cannot be nil")
	}
	return &service{repo: repo}
}

func (s *service) GetProduct(id string) (Product, error) {
	p, ok := s.repo.GetProduct(id)
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *service) ListProducts(params ListParams) ListResult {
	filtered := make([]Product, 0)
	for _, p := range s.repo.ListProducts() {
		if matches(p, params) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, params.Sort)

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	page := params.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return ListResult{
		Products:   filtered[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

func matches(p Product, params ListParams) bool {
	if q := strings.ToLower(strings.TrimSpace(params.Query)); q != "" {
		haystack := strings.ToLower(p.Name + " " + p.Brand + " " + p.Description + " " + strings.Join(p.Tags, " "))
		if !strings.Contains(haystack, q) {
			return false
		}
	}

	if params.Category != "" && p.Category != params.Category {
		return false
	}

	if params.PriceMin > 0 && p.Price < params.PriceMin {
		return false
	}
	if params.PriceMax > 0 && p.Price > params.PriceMax {
		return false
	}

	if len(params.Brands) > 0 {
		found := false
		for _, b := range params.Brands {
			if strings.EqualFold(b, p.Brand) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if params.MinRating > 0 && p.Rating < params.MinRating {
		return false
	}

	if params.MinDiscount > 0 && p.DiscountPercent() < params.MinDiscount {
		return false
	}

	if params.InStockOnly && !p.InStock {
		return false
	}

	for key, want := range params.Attributes {
		if !strings.EqualFold(p.Attributes[key], want) {
			return false
		}
	}

	return true
}

func sortProducts(products []Product, key string) {
	switch key {
	case "price-asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price-desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "rating":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case "discount":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DiscountPercent() > products[j].DiscountPercent()
		})
	default:
		// popularity
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewsCount > products[j].ReviewsCount
		})
	}
}

func (s *service) ListCategories() []Category {
	return s.repo.ListCategories()
}

func (s *service) ListBanners() []Banner {
	return s.repo.ListBanners()
}

func (s *service) ListReviews(productID string) []Review {
	return s.repo.ListReviews(productID)
}

func (s *service) ResolveCoupon(code string) (Coupon, error) {
	c, ok := s.repo.GetCoupon(code)
	if !ok {
		return Coupon{}, ErrInvalidCoupon
	}
	return c, nil
}
