package ports

import (
	"context"

	"github.com/reportlab/account-service/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns a signed token carrying
	// the principal claims {id, username, user_role}.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
