package cart

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

// GET /cart
func (h *Handler) Detail(c *gin.Context) {
	res := h.service.Detail(c.Request.Context())
	response.Success(c, http.StatusOK, "", res)
}

// POST /cart/items/:productId
func (h *Handler) AddItem(c *gin.Context) {
	productID := c.Param("productId")

	res, err := h.service.AddItem(c.Request.Context(), productID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, res.Message, res.Cart)
}

// PATCH /cart/items/:productId
func (h *Handler) UpdateQuantity(c *gin.Context) {
	productID := c.Param("productId")

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(ErrInvalidQuantity)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	res, err := h.service.UpdateQuantity(c.Request.Context(), productID, *req.Quantity)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res.Message, res.Cart)
}

// DELETE /cart/items/:productId
func (h *Handler) RemoveItem(c *gin.Context) {
	productID := c.Param("productId")

	res, err := h.service.RemoveItem(c.Request.Context(), productID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res.Message, res.Cart)
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	res, err := h.service.Clear(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res.Message, res.Cart)
}
