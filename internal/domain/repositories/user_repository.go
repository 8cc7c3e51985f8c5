package repositories

import (
	"context"

	"members-portal/internal/domain"
)

// UserRepository is the credential store contract. Email uniqueness is NOT
// enforced at this layer; callers run an existence check before Create and
// accept the resulting check-then-insert race as a known limitation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error

	// FindAllByUsername returns every record with the given username.
	// Usernames are not unique, and login requires exactly one match.
	FindAllByUsername(ctx context.Context, username string) ([]domain.User, error)

	// FindByEmail returns (nil, nil) when no record matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateRole sets the role on the first record matching username.
	// Matching nothing is not an error.
	UpdateRole(ctx context.Context, username string, role domain.Role) error

	// ListAll returns every record for the admin panel, password hashes
	// cleared.
	ListAll(ctx context.Context) ([]domain.User, error)
}
