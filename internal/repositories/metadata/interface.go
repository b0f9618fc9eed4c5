// Package metadata is a small key-value store kept in the local SQLite
// database. Values are opaque bytes stamped with the time they were written.
package metadata

import (
	"context"
	"time"
)

// Entry is one stored key.
type Entry struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// Repository is the key-value contract. Get reports a missing key as
// common.ErrorNotFound.
type Repository interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Put(ctx context.Context, key string, value []byte, at time.Time) error
	Delete(ctx context.Context, key string) error
}
