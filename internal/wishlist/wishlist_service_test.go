package wishlist_test

import (
	"context"
	"sync"
	"testing"

	"github.com/dev-dotsquares/ecommerce/internal/catalog"
	"github.com/dev-dotsquares/ecommerce/internal/notify"
	"github.com/dev-dotsquares/ecommerce/internal/storage"
	"github.com/dev-dotsquares/ecommerce/internal/wishlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recordingNotifier) Notify(_ context.Context, event notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func newTestService(t *testing.T, backing storage.Store) (wishlist.Service, *recordingNotifier) {
	t.Helper()

	catalogService := catalog.NewService(catalog.NewRepository(catalog.Data{
		Products: []catalog.Product{
			{ID: "p1", Name: "Widget", Price: 20, InStock: true},
		},
	}))

	mirror := storage.NewMirror(backing, wishlist.Slot, wishlist.EmptyState(), nil)
	store := wishlist.NewStore(context.Background(), mirror, nil)

	notifier := &recordingNotifier{}
	svc := wishlist.NewService(wishlist.Deps{
		Store:    store,
		Catalog:  catalogService,
		Notifier: notifier,
	})
	return svc, notifier
}

func TestWishlistService_Toggle(t *testing.T) {
	svc, notifier := newTestService(t, storage.NewMemoryStore())
	ctx := context.Background()

	res, err := svc.Toggle(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, res.Added)
	assert.Equal(t, "Widget added to wishlist", res.Message)
	assert.Equal(t, 1, res.Wishlist.ItemCount)

	res, err = svc.Toggle(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, res.Added)
	assert.Equal(t, "Widget removed from wishlist", res.Message)
	assert.Equal(t, 0, res.Wishlist.ItemCount)

	assert.Len(t, notifier.events, 2)
}

func TestWishlistService_Toggle_UnknownProduct(t *testing.T) {
	svc, notifier := newTestService(t, storage.NewMemoryStore())

	_, err := svc.Toggle(context.Background(), "ghost")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.Empty(t, notifier.events)
}

func TestWishlistService_PersistsAcrossSessions(t *testing.T) {
	backing := storage.NewMemoryStore()
	ctx := context.Background()

	svc, _ := newTestService(t, backing)
	_, err := svc.Toggle(ctx, "p1")
	require.NoError(t, err)

	// A second service over the same backing simulates a fresh session.
	reloaded, _ := newTestService(t, backing)
	assert.Equal(t, 1, reloaded.List(ctx).ItemCount)
}
