package cart

import "github.com/dev-dotsquares/ecommerce/internal/catalog"

// Item is a catalog product annotated with a purchase quantity. An item never
// stays in the cart with quantity <= 0; it is removed instead.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// State is the ordered cart collection, at most one item per product id.
type State struct {
	Items []Item `json:"items"`
}

func EmptyState() State {
	return State{Items: []Item{}}
}

func (s State) find(productID string) int {
	for i, item := range s.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// Quantity reports the quantity for a product id, 0 when absent.
func (s State) Quantity(productID string) int {
	if i := s.find(productID); i >= 0 {
		return s.Items[i].Quantity
	}
	return 0
}

type Action interface {
	isCartAction()
}

// AddItem increments the quantity of an existing line or appends a new line
// with quantity 1. Existing order is preserved; new items go at the end.
type AddItem struct {
	Product catalog.Product
}

// RemoveItem drops the line for the product id; no-op when absent.
type RemoveItem struct {
	ID string
}

// UpdateQuantity sets the line quantity to max(0, Quantity) and drops the
// line when it reaches 0; no-op when the id is absent.
type UpdateQuantity struct {
	ID       string
	Quantity int
}

// Clear empties the cart.
type Clear struct{}

// SetState replaces the state wholesale. Only the store uses it, to reconcile
// with a freshly loaded persisted snapshot; it is not a user action.
type SetState struct {
	State State
}

func (AddItem) isCartAction()        {}
func (RemoveItem) isCartAction()     {}
func (UpdateQuantity) isCartAction() {}
func (Clear) isCartAction()          {}
func (SetState) isCartAction()       {}

// Reduce maps (state, action) to the next state. Pure: the input state is
// never mutated, unknown ids are silent no-ops.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		items := make([]Item, len(state.Items))
		copy(items, state.Items)
		if i := state.find(a.Product.ID); i >= 0 {
			items[i].Quantity++
			return State{Items: items}
		}
		return State{Items: append(items, Item{Product: a.Product, Quantity: 1})}

	case RemoveItem:
		items := make([]Item, 0, len(state.Items))
		for _, item := range state.Items {
			if item.Product.ID != a.ID {
				items = append(items, item)
			}
		}
		return State{Items: items}

	case UpdateQuantity:
		qty := a.Quantity
		if qty < 0 {
			qty = 0
		}
		items := make([]Item, 0, len(state.Items))
		for _, item := range state.Items {
			if item.Product.ID == a.ID {
				item.Quantity = qty
			}
			if item.Quantity > 0 {
				items = append(items, item)
			}
		}
		return State{Items: items}

	case Clear:
		return EmptyState()

	case SetState:
		return a.State

	default:
		return state
	}
}
