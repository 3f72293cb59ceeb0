package cart

import (
	"net/http"

	"github.com/dev-dotsquares/ecommerce/internal/pkg/apperror"
)

var ErrInvalidQuantity = apperror.New(
	apperror.CodeInvalidInput,
	"Quantity is required",
	http.StatusBadRequest,
)
