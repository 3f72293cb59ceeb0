package wishlist

import (
	"context"
	"sync"

	"github.com/dev-dotsquares/ecommerce/internal/catalog"
	"github.com/dev-dotsquares/ecommerce/internal/storage"

	"go.uber.org/zap"
)

// Slot is the durable storage slot holding the wishlist snapshot.
const Slot = "wishlist"

// Store owns the wishlist state the same way the cart store owns the cart:
// rehydrate once, write through on every dispatch, degrade in-memory when the
// mirror write fails.
type Store struct {
	mu     sync.Mutex
	state  State
	mirror *storage.Mirror[State]
	logger *zap.Logger
}

func NewStore(ctx context.Context, mirror *storage.Mirror[State], logger *zap.Logger) *Store {
	if mirror == nil {
		panic("wishlist mirror cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{mirror: mirror, logger: logger}
	s.state = Reduce(EmptyState(), SetState{State: mirror.Load(ctx)})
	return s
}

func (s *Store) Dispatch(ctx context.Context, action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reduce(s.state, action)
	if err := s.mirror.Save(ctx, next); err != nil {
		s.logger.Warn("wishlist snapshot not persisted, continuing in memory", zap.Error(err))
	}
	s.state = next
	return s.snapshotLocked()
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	items := make([]catalog.Product, len(s.state.Items))
	copy(items, s.state.Items)
	return State{Items: items}
}
