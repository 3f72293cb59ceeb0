package cart_test

import (
	"testing"

	"github.com/dev-dotsquares/ecommerce/internal/cart"
	"github.com/dev-dotsquares/ecommerce/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func product(id string, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: "Product " + id, Price: price, InStock: true}
}

func TestReduce_AddItem(t *testing.T) {
	p1 := product("p1", 20)
	p2 := product("p2", 5)

	t.Run("repeated adds accumulate into one line", func(t *testing.T) {
		state := cart.EmptyState()
		for i := 0; i < 3; i++ {
			state = cart.Reduce(state, cart.AddItem{Product: p1})
		}

		assert.Len(t, state.Items, 1)
		assert.Equal(t, 3, state.Quantity("p1"))
	})

	t.Run("new items append at the end, order preserved", func(t *testing.T) {
		state := cart.EmptyState()
		state = cart.Reduce(state, cart.AddItem{Product: p1})
		state = cart.Reduce(state, cart.AddItem{Product: p2})
		state = cart.Reduce(state, cart.AddItem{Product: p1})

		assert.Equal(t, "p1", state.Items[0].Product.ID)
		assert.Equal(t, "p2", state.Items[1].Product.ID)
	})

	t.Run("input state is not mutated", func(t *testing.T) {
		before := cart.Reduce(cart.EmptyState(), cart.AddItem{Product: p1})
		_ = cart.Reduce(before, cart.AddItem{Product: p1})

		assert.Equal(t, 1, before.Quantity("p1"))
	})
}

func TestReduce_RemoveItem(t *testing.T) {
	p1 := product("p1", 20)
	state := cart.Reduce(cart.EmptyState(), cart.AddItem{Product: p1})

	t.Run("removes the line", func(t *testing.T) {
		next := cart.Reduce(state, cart.RemoveItem{ID: "p1"})
		assert.Empty(t, next.Items)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		next := cart.Reduce(state, cart.RemoveItem{ID: "nope"})
		if diff := cmp.Diff(state, next); diff != "" {
			t.Errorf("state changed on unknown id (-want +got):\n%s", diff)
		}
	})
}

func TestReduce_UpdateQuantity(t *testing.T) {
	p1 := product("p1", 20)
	p2 := product("p2", 5)
	state := cart.Reduce(cart.EmptyState(), cart.AddItem{Product: p1})
	state = cart.Reduce(state, cart.AddItem{Product: p2})

	t.Run("sets the quantity", func(t *testing.T) {
		next := cart.Reduce(state, cart.UpdateQuantity{ID: "p1", Quantity: 5})
		assert.Equal(t, 5, next.Quantity("p1"))
		assert.Equal(t, 1, next.Quantity("p2"))
	})

	t.Run("zero is equivalent to removal", func(t *testing.T) {
		viaUpdate := cart.Reduce(state, cart.UpdateQuantity{ID: "p1", Quantity: 0})
		viaRemove := cart.Reduce(state, cart.RemoveItem{ID: "p1"})

		if diff := cmp.Diff(viaRemove, viaUpdate); diff != "" {
			t.Errorf("UpdateQuantity(0) != RemoveItem (-remove +update):\n%s", diff)
		}
	})

	t.Run("negative clamps to zero and drops the line", func(t *testing.T) {
		next := cart.Reduce(state, cart.UpdateQuantity{ID: "p1", Quantity: -3})
		assert.Equal(t, 0, next.Quantity("p1"))
		assert.Len(t, next.Items, 1)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		next := cart.Reduce(state, cart.UpdateQuantity{ID: "nope", Quantity: 7})
		if diff := cmp.Diff(state, next); diff != "" {
			t.Errorf("state changed on unknown id (-want +got):\n%s", diff)
		}
	})
}

func TestReduce_Clear(t *testing.T) {
	p1 := product("p1", 20)
	state := cart.Reduce(cart.EmptyState(), cart.AddItem{Product: p1})

	cleared := cart.Reduce(state, cart.Clear{})
	assert.Empty(t, cleared.Items)

	// Adding after a clear behaves exactly like adding to a fresh cart.
	reAdded := cart.Reduce(cleared, cart.AddItem{Product: p1})
	fresh := cart.Reduce(cart.EmptyState(), cart.AddItem{Product: p1})
	if diff := cmp.Diff(fresh, reAdded); diff != "" {
		t.Errorf("re-add after clear differs from fresh cart (-fresh +readd):\n%s", diff)
	}
}

func TestReduce_SetState(t *testing.T) {
	p1 := product("p1", 20)
	snapshot := cart.State{Items: []cart.Item{{Product: p1, Quantity: 4}}}

	state := cart.Reduce(cart.EmptyState(), cart.SetState{State: snapshot})
	if diff := cmp.Diff(snapshot, state); diff != "" {
		t.Errorf("SetState did not replace wholesale (-want +got):\n%s", diff)
	}
}
