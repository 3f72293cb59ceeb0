package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

type APIResponse struct {
	Success    bool         `json:"success"`
	Data       interface{}  `json:"data"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Error      *ErrorDetail `json:"error,omitempty"`
	Message    string       `json:"message"`
	RequestID  string       `json:"requestId"`
	Timestamp  string       `json:"timestamp"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success writes a single-value payload. The message doubles as the
// user-visible notification for state-changing actions.
func Success(c *gin.Context, status int, message string, data interface{}) {
	requestID := c.GetString("X-Request-ID")
	c.JSON(status, APIResponse{
		Success:   true,
		Data:      data,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// SuccessWithPagination writes a list payload.
func SuccessWithPagination(c *gin.Context, status int, message string, data interface{}, pag Pagination) {
	requestID := c.GetString("X-Request-ID")
	c.JSON(status, APIResponse{
		Success:    true,
		Data:       data,
		Pagination: &pag,
		Message:    message,
		RequestID:  requestID,
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}

func Error(c *gin.Context, status int, errCode string, message string, details interface{}) {
	requestID := c.GetString("X-Request-ID")
	c.JSON(status, APIResponse{
		Success: false,
		Error: &ErrorDetail{
			Code:    errCode,
			Message: message,
			Details: details,
		},
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
