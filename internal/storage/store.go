package storage

import (
	"context"
	"errors"

	"routined/internal/model"
)

var (
	// ErrNotFound is returned for a missing snapshot key; callers fall back
	// to the default routine on first run.
	ErrNotFound = errors.New("storage: not found")
	// ErrCorruptSnapshot marks a stored document that no longer parses.
	// The load is aborted with no partial state; the in-memory aggregate
	// is never touched by a bad read.
	ErrCorruptSnapshot = errors.New("storage: corrupt snapshot")
)

// SnapshotStore is the whole storage contract the core needs: one logical
// JSON document per key, loaded and saved atomically.
type SnapshotStore interface {
	Load(ctx context.Context, key string) (model.Snapshot, error)
	Save(ctx context.Context, key string, snap model.Snapshot) error
}
