package catalog

import (
	"net/http"

	"github.com/dev-dotsquares/ecommerce/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrInvalidCoupon = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid coupon code",
		http.StatusBadRequest,
	)
)
