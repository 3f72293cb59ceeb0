package cart

import "github.com/dev-dotsquares/ecommerce/internal/catalog"

// ==================== REQUEST STRUCTS ====================

type UpdateQuantityRequest struct {
	// Pointer so an explicit 0 (remove-equivalent) passes binding.
	Quantity *int `json:"quantity" binding:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type ItemResponse struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal float64         `json:"lineTotal"`
}

type DetailResponse struct {
	Items      []ItemResponse `json:"items"`
	TotalItems int            `json:"totalItems"`
	Subtotal   float64        `json:"subtotal"`
}

type MutationResponse struct {
	Message string         `json:"message"`
	Cart    DetailResponse `json:"cart"`
}
