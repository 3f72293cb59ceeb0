package cart_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dev-dotsquares/ecommerce/internal/cart"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE SERVICE ====================

type fakeCartService struct {
	AddItemFn        func(ctx context.Context, productID string) (cart.MutationResponse, error)
	UpdateQuantityFn func(ctx context.Context, productID string, quantity int) (cart.MutationResponse, error)
	RemoveItemFn     func(ctx context.Context, productID string) (cart.MutationResponse, error)
	ClearFn          func(ctx context.Context) (cart.MutationResponse, error)
	DetailFn         func(ctx context.Context) cart.DetailResponse
}

func (f *fakeCartService) AddItem(ctx context.Context, productID string) (cart.MutationResponse, error) {
	return f.AddItemFn(ctx, productID)
}

func (f *fakeCartService) UpdateQuantity(ctx context.Context, productID string, quantity int) (cart.MutationResponse, error) {
	return f.UpdateQuantityFn(ctx, productID, quantity)
}

func (f *fakeCartService) RemoveItem(ctx context.Context, productID string) (cart.MutationResponse, error) {
	return f.RemoveItemFn(ctx, productID)
}

func (f *fakeCartService) Clear(ctx context.Context) (cart.MutationResponse, error) {
	return f.ClearFn(ctx)
}

func (f *fakeCartService) Detail(ctx context.Context) cart.DetailResponse {
	if f.DetailFn == nil {
		return cart.DetailResponse{Items: []cart.ItemResponse{}}
	}
	return f.DetailFn(ctx)
}

func (f *fakeCartService) Items(context.Context) []cart.Item {
	return nil
}

// ==================== HELPERS ====================

func setupRouter(svc cart.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cart.RegisterRoutes(r.Group("/api/v1"), cart.NewHandler(svc))
	return r
}

// ==================== TESTS ====================

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(_ context.Context, productID string) (cart.MutationResponse, error) {
				assert.Equal(t, "p1", productID)
				return cart.MutationResponse{Message: "Widget added to cart"}, nil
			},
		}
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items/p1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Widget added to cart")
	})

	t.Run("unknown product", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(context.Context, string) (cart.MutationResponse, error) {
				return cart.MutationResponse{}, assert.AnError
			},
		}
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items/ghost", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{
			UpdateQuantityFn: func(_ context.Context, productID string, quantity int) (cart.MutationResponse, error) {
				assert.Equal(t, "p1", productID)
				assert.Equal(t, 0, quantity)
				return cart.MutationResponse{Message: "Widget removed from cart"}, nil
			},
		}
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/p1", strings.NewReader(`{"quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing quantity", func(t *testing.T) {
		router := setupRouter(&fakeCartService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/p1", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_Detail(t *testing.T) {
	svc := &fakeCartService{
		DetailFn: func(context.Context) cart.DetailResponse {
			return cart.DetailResponse{TotalItems: 3, Subtotal: 45}
		},
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalItems":3`)
}

func TestCartHandler_Clear(t *testing.T) {
	svc := &fakeCartService{
		ClearFn: func(context.Context) (cart.MutationResponse, error) {
			return cart.MutationResponse{Message: "Cart cleared"}, nil
		},
	}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cart cleared")
}
