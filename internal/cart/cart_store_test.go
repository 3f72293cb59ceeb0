package cart_test

import (
	"context"
	"testing"

	"github.com/dev-dotsquares/ecommerce/internal/cart"
	"github.com/dev-dotsquares/ecommerce/internal/storage"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func newCartStore(backing storage.Store) *cart.Store {
	mirror := storage.NewMirror(backing, cart.Slot, cart.EmptyState(), nil)
	return cart.NewStore(context.Background(), mirror, nil)
}

func TestStore_PersistenceRoundTrip(t *testing.T) {
	backing := storage.NewMemoryStore()
	ctx := context.Background()

	store := newCartStore(backing)
	store.Dispatch(ctx, cart.AddItem{Product: product("p1", 20)})
	store.Dispatch(ctx, cart.AddItem{Product: product("p1", 20)})
	store.Dispatch(ctx, cart.AddItem{Product: product("p2", 5)})
	want := store.State()

	// A second store over the same backing simulates a fresh session.
	reloaded := newCartStore(backing)
	if diff := cmp.Diff(want, reloaded.State()); diff != "" {
		t.Errorf("rehydrated state differs (-want +got):\n%s", diff)
	}
}

func TestStore_WriteThroughOnEveryDispatch(t *testing.T) {
	backing := storage.NewMemoryStore()
	ctx := context.Background()

	store := newCartStore(backing)
	store.Dispatch(ctx, cart.AddItem{Product: product("p1", 20)})

	// Storage already reflects the dispatch, before any further action.
	assert.Equal(t, 1, newCartStore(backing).State().Quantity("p1"))

	store.Dispatch(ctx, cart.Clear{})
	assert.Empty(t, newCartStore(backing).State().Items)
}

type brokenStore struct{ storage.Store }

func (brokenStore) Save(context.Context, string, []byte) error {
	return assert.AnError
}

func TestStore_KeepsWorkingWhenStorageFails(t *testing.T) {
	backing := brokenStore{storage.NewMemoryStore()}
	ctx := context.Background()

	store := cart.NewStore(ctx, storage.NewMirror[cart.State](backing, cart.Slot, cart.EmptyState(), nil), nil)

	state := store.Dispatch(ctx, cart.AddItem{Product: product("p1", 20)})
	assert.Equal(t, 1, state.Quantity("p1"))
	assert.Equal(t, 1, store.State().Quantity("p1"))
}
