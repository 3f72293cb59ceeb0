package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dev-dotsquares/ecommerce/internal/pkg/apperror"
	"github.com/dev-dotsquares/ecommerce/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GET /products
func (h *Handler) List(c *gin.Context) {
	params := parseListParams(c)
	result := h.service.ListProducts(params)

	response.SuccessWithPagination(c, http.StatusOK, "", result.Products, response.Pagination{
		Page:            result.Page,
		PageSize:        result.PageSize,
		TotalItems:      int64(result.TotalItems),
		TotalPages:      result.TotalPages,
		HasNextPage:     result.Page < result.TotalPages,
		HasPreviousPage: result.Page > 1,
	})
}

// GET /products/:id
func (h *Handler) Detail(c *gin.Context) {
	id := c.Param("id")

	product, err := h.service.GetProduct(id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", ProductDetailResponse{
		Product: product,
		Reviews: h.service.ListReviews(id),
	})
}

// GET /categories
func (h *Handler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.service.ListCategories())
}

// GET /banners
func (h *Handler) Banners(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.service.ListBanners())
}

func parseListParams(c *gin.Context) ListParams {
	params := ListParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = page
	}

	// price is a "min-max" range; either side may be empty.
	if priceRange := c.Query("price"); priceRange != "" {
		parts := strings.SplitN(priceRange, "-", 2)
		if v, err := strconv.ParseFloat(parts[0], 64); err == nil {
			params.PriceMin = v
		}
		if len(parts) == 2 {
			if v, err := strconv.ParseFloat(parts[1], 64); err == nil {
				params.PriceMax = v
			}
		}
	}

	if brand := c.Query("brand"); brand != "" {
		params.Brands = strings.Split(brand, ",")
	}

	if v, err := strconv.ParseFloat(c.Query("rating"), 64); err == nil {
		params.MinRating = v
	}
	if v, err := strconv.ParseFloat(c.Query("discount"), 64); err == nil {
		params.MinDiscount = v
	}
	if c.Query("stock") == "true" {
		params.InStockOnly = true
	}

	for key, values := range c.Request.URL.Query() {
		if attr, ok := strings.CutPrefix(key, "attributes."); ok && len(values) > 0 {
			if params.Attributes == nil {
				params.Attributes = make(map[string]string)
			}
			params.Attributes[attr] = values[0]
		}
	}

	return params
}
