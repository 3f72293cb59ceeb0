package wishlist

import (
	"net/http"

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

// GET /wishlist
func (h *Handler) List(c *gin.Context) {
	res := h.service.List(c.Request.Context())
	response.Success(c, http.StatusOK, "", res)
}

// POST /wishlist/items/:productId/toggle
func (h *Handler) Toggle(c *gin.Context) {
	productID := c.Param("productId")

	res, err := h.service.Toggle(c.Request.Context(), productID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res.Message, res)
}
