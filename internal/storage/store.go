package storage

import (
	"context"
	"errors"
)

// ErrSlotNotFound is returned by Load when the slot has never been written.
var ErrSlotNotFound = errors.New("storage: slot not found")

// Store is a durable key-value backend holding one serialized value per slot.
// Writes replace the whole value.
type Store interface {
	Load(ctx context.Context, slot string) ([]byte, error)
	Save(ctx context.Context, slot string, value []byte) error
}
