package wishlist

import "github.com/dev-dotsquares/ecommerce/internal/catalog"

type ListResponse struct {
	Items     []catalog.Product `json:"items"`
	ItemCount int               `json:"itemCount"`
}

type ToggleResponse struct {
	Message  string       `json:"message"`
	Added    bool         `json:"added"`
	Wishlist ListResponse `json:"wishlist"`
}
