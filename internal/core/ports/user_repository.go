package ports

import (
	"context"

	"github.com/reportlab/account-service/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned ID.
	// Returns domain.ErrUserExists on a username/email collision.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// ByID returns domain.ErrUserNotFound when no such user exists.
	ByID(ctx context.Context, id int64) (*domain.User, error)

	// ByUsername returns domain.ErrUserNotFound when no such user exists.
	ByUsername(ctx context.Context, username string) (*domain.User, error)

	// UsernameOrEmailTaken reports whether another user (id != excludeID)
	// already holds the given username or email.
	UsernameOrEmailTaken(ctx context.Context, username, email string, excludeID int64) (bool, error)

	// Update persists all mutable fields of the user.
	Update(ctx context.Context, user *domain.User) error

	// List returns a page of users ordered by ID.
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
}
