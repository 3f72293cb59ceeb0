package cart

import (
	"context"
	"sync"

	"github.com/dev-dotsquares/ecommerce/internal/storage"

	"go.uber.org/zap"
)

// Slot is the durable storage slot holding the cart snapshot.
const Slot = "cart"

// Store is the single authoritative owner of the cart state. Durable storage
// is only an initial-load source and a write-through sink: every dispatch
// persists the reduced state before swapping it in, so memory and storage
// cannot diverge for longer than one action.
type Store struct {
	mu     sync.Mutex
	state  State
	mirror *storage.Mirror[State]
	logger *zap.Logger
}

func NewStore(ctx context.Context, mirror *storage.Mirror[State], logger *zap.Logger) *Store {
	if mirror == nil {
		panic("cart mirror cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{mirror: mirror, logger: logger}
	s.state = Reduce(EmptyState(), SetState{State: mirror.Load(ctx)})
	return s
}

// Dispatch runs the action through the reducer, mirrors the result, and
// returns the new state. A failed mirror write degrades to in-memory for the
// session instead of failing the action.
func (s *Store) Dispatch(ctx context.Context, action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reduce(s.state, action)
	if err := s.mirror.Save(ctx, next); err != nil {
		s.logger.Warn("cart snapshot not persisted, continuing in memory", zap.Error(err))
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
	items := make([]Item, len(s.state.Items))
	copy(items, s.state.Items)
	return State{Items: items}
}
