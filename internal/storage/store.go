package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// SnapshotStore persists opaque state blobs by key. Writes replace the
// previous snapshot for the key.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Snapshot keys. Engine state and cached calendar data version
// independently.
const (
	KeyUI       = "ui"
	KeyCalendar = "calendar"
)
