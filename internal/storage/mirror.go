package storage

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// Mirror keeps one named slot synchronized with a state value of type T.
// It is generic over the state shape: the cart, the wishlist and the shipping
// address all use the same mirror, parameterized only by slot name and
// default value.
type Mirror[T any] struct {
	store    Store
	slot     string
	fallback T
	logger   *zap.Logger
}

func NewMirror[T any](store Store, slot string, fallback T, logger *zap.Logger) *Mirror[T] {
	if store == nil {
		panic("mirror store cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mirror[T]{
		store:    store,
		slot:     slot,
		fallback: fallback,
		logger:   logger,
	}
}

// Load reads the slot and deserializes it. An absent or unparsable slot falls
// back to the default value rather than failing: stale garbage in storage must
// never break the session.
func (m *Mirror[T]) Load(ctx context.Context) T {
	raw, err := m.store.Load(ctx, m.slot)
	if err != nil {
		if !errors.Is(err, ErrSlotNotFound) {
			m.logger.Warn("failed to load slot, using default",
				zap.String("slot", m.slot), zap.Error(err))
		}
		return m.fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		m.logger.Warn("unparsable slot value, using default",
			zap.String("slot", m.slot), zap.Error(err))
		return m.fallback
	}
	return value
}

// Save serializes the value and replaces the slot wholesale. Callers treat a
// failed save as non-fatal and keep operating in memory for the session.
func (m *Mirror[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return m.store.Save(ctx, m.slot, raw)
}
