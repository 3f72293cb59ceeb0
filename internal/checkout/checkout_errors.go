package checkout

import (
	"net/http"

	"github.com/dev-dotsquares/ecommerce/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(
		apperror.CodeInvalidInput,
		"Cart is empty",
		http.StatusBadRequest,
	)

	ErrAddressRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Shipping address must be submitted before payment",
		http.StatusConflict,
	)

	ErrInvalidAddress = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid shipping address",
		http.StatusBadRequest,
	)

	ErrInvalidPaymentMethod = apperror.New(
		apperror.CodeInvalidInput,
		"Payment method must be cod or card",
		http.StatusBadRequest,
	)

	ErrOrderInProgress = apperror.New(
		apperror.CodeConflict,
		"An order is already being processed",
		http.StatusConflict,
	)
)
