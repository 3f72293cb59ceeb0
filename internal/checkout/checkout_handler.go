package checkout

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

// GET /checkout
func (h *Handler) State(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.service.State(c.Request.Context()))
}

// POST /checkout/address
func (h *Handler) SubmitAddress(c *gin.Context) {
	var req SubmitAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.SubmitAddress(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Shipping address saved", res)
}

// POST /checkout/address/change
func (h *Handler) ChangeAddress(c *gin.Context) {
	res := h.service.ChangeAddress(c.Request.Context())
	response.Success(c, http.StatusOK, "Back to shipping address", res)
}

// GET /checkout/summary
func (h *Handler) Summary(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.service.Summary(c.Request.Context()))
}

// POST /checkout/coupon
func (h *Handler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Coupon code is required", err.Error())
		return
	}

	res, err := h.service.ApplyCoupon(c.Request.Context(), req.Code)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Coupon applied", res)
}

// DELETE /checkout/coupon
func (h *Handler) RemoveCoupon(c *gin.Context) {
	res := h.service.RemoveCoupon(c.Request.Context())
	response.Success(c, http.StatusOK, "Coupon removed", res)
}

// POST /checkout/order
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Payment method is required", err.Error())
		return
	}

	res, err := h.service.PlaceOrder(c.Request.Context(), req.Method)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, res.Message, res)
}
