package ports

import (
	"context"

	"github.com/reportlab/account-service/internal/core/domain"
)

type RegisterUserInput struct {
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Password    string
	PhoneNumber string
}

type ChangePasswordInput struct {
	CurrentPassword   string
	NewPassword       string
	NewPasswordRetype string
}

// UpdateProfileInput carries optional profile fields; nil means "leave as is".
type UpdateProfileInput struct {
	Username    *string
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// RoleRequestOutcome distinguishes a submitted request from the idempotent
// same-role no-op, which is a message rather than an error.
type RoleRequestOutcome string

const (
	RoleRequestSubmitted RoleRequestOutcome = "submitted"
	RoleRequestNoop      RoleRequestOutcome = "noop"
)

type UserService interface {
	Register(ctx context.Context, in RegisterUserInput) (*domain.User, error)
	Me(ctx context.Context, principal Principal) (*domain.User, error)
	ChangePassword(ctx context.Context, principal Principal, in ChangePasswordInput) error
	UpdateProfile(ctx context.Context, principal Principal, in UpdateProfileInput) error
	RequestRoleChange(ctx context.Context, principal Principal, newRole string) (RoleRequestOutcome, error)
}
