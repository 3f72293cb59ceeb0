package wishlist_test

import (
	"testing"

	"github.com/dev-dotsquares/ecommerce/internal/catalog"
	"github.com/dev-dotsquares/ecommerce/internal/wishlist"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func product(id string) catalog.Product {
	return catalog.Product{ID: id, Name: "Product " + id, Price: 10, InStock: true}
}

func TestReduce_Toggle(t *testing.T) {
	p1 := product("p1")
	p2 := product("p2")

	t.Run("adds when absent", func(t *testing.T) {
		state := wishlist.Reduce(wishlist.EmptyState(), wishlist.Toggle{Product: p1})
		assert.True(t, state.Contains("p1"))
		assert.Len(t, state.Items, 1)
	})

	t.Run("removes when present", func(t *testing.T) {
		state := wishlist.Reduce(wishlist.EmptyState(), wishlist.Toggle{Product: p1})
		state = wishlist.Reduce(state, wishlist.Toggle{Product: p2})
		state = wishlist.Reduce(state, wishlist.Toggle{Product: p1})

		assert.False(t, state.Contains("p1"))
		assert.True(t, state.Contains("p2"))
	})

	t.Run("double toggle returns the original state", func(t *testing.T) {
		original := wishlist.Reduce(wishlist.EmptyState(), wishlist.Toggle{Product: p2})

		state := wishlist.Reduce(original, wishlist.Toggle{Product: p1})
		state = wishlist.Reduce(state, wishlist.Toggle{Product: p1})

		if diff := cmp.Diff(original, state); diff != "" {
			t.Errorf("toggle is not an involution (-want +got):\n%s", diff)
		}
	})

	t.Run("input state is not mutated", func(t *testing.T) {
		original := wishlist.Reduce(wishlist.EmptyState(), wishlist.Toggle{Product: p1})
		_ = wishlist.Reduce(original, wishlist.Toggle{Product: p2})

		assert.Len(t, original.Items, 1)
	})
}

func TestReduce_SetState(t *testing.T) {
	snapshot := wishlist.State{Items: []catalog.Product{product("p1"), product("p2")}}

	state := wishlist.Reduce(wishlist.EmptyState(), wishlist.SetState{State: snapshot})
	if diff := cmp.Diff(snapshot, state); diff != "" {
		t.Errorf("SetState did not replace wholesale (-want +got):\n%s", diff)
	}
}
