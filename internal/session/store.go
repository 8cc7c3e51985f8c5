// Package session owns the server-side session entries and the cookie
// handling that ties an opaque session ID to them.
package session

import (
	"context"
	"time"

	"members-portal/internal/domain"
)

// Store abstracts session CRUD so entries can live in Redis or, for
// development and tests, in memory.
type Store interface {
	// Get returns (nil, nil) when the ID resolves to nothing, including
	// entries the backend already expired.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Put creates or replaces the entry and (re)arms its TTL.
	Put(ctx context.Context, id string, sess *domain.Session, ttl time.Duration) error

	// Delete removes the entry. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error
}
