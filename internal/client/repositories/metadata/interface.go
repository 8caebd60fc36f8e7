// Package metadata is a small string key/value store in the local database.
// It holds client state that is not part of any note, such as the session
// token.
package metadata

import (
	"context"
	"time"
)

// Entry is a stored value and the time it was last written.
type Entry struct {
	Value     string
	UpdatedAt time.Time
}

type Repository interface {
	// Get returns the entry for key; ok is false when there is none.
	Get(ctx context.Context, key string) (e Entry, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
