package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to an HTTP error payload. AppError values anywhere in
// the chain keep their code and status; everything else is a 500.
func ToHTTP(err error) *HTTPError {
	if err == nil {
		return &HTTPError{Status: http.StatusOK}
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "internal server error",
	}
}
