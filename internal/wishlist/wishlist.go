package wishlist

import "github.com/dev-dotsquares/ecommerce/internal/catalog"

// State is a set of products keyed by id, no quantities.
type State struct {
	Items []catalog.Product `json:"items"`
}

func EmptyState() State {
	return State{Items: []catalog.Product{}}
}

// Contains reports whether the product id is wishlisted.
func (s State) Contains(productID string) bool {
	for _, p := range s.Items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

type Action interface {
	isWishlistAction()
}

// Toggle removes the product when present and adds it otherwise. Applying it
// twice with the same product returns the original state.
type Toggle struct {
	Product catalog.Product
}

// SetState replaces the state wholesale; store-internal only.
type SetState struct {
	State State
}

func (Toggle) isWishlistAction()   {}
func (SetState) isWishlistAction() {}

// Reduce maps (state, action) to the next state without mutating the input.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case Toggle:
		if state.Contains(a.Product.ID) {
			items := make([]catalog.Product, 0, len(state.Items))
			for _, p := range state.Items {
				if p.ID != a.Product.ID {
					items = append(items, p)
				}
			}
			return State{Items: items}
		}
		items := make([]catalog.Product, len(state.Items))
		copy(items, state.Items)
		return State{Items: append(items, a.Product)}

	case SetState:
		return a.State

	default:
		return state
	}
}
