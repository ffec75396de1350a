package service

import (
	"context"

	"github.com/reportlab/account-service/internal/core/domain"
	"github.com/reportlab/account-service/internal/core/ports"
)

// loadActiveActor resolves the acting user behind a principal and applies the
// admission checks shared by every workflow: a principal must be present, the
// user record must exist, and the account must be active. Role gates are
// layered on top by the callers.
func loadActiveActor(ctx context.Context, users ports.UserRepository, p ports.Principal) (*domain.User, error) {
	if p.ID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	actor, err := users.ByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if !actor.IsActive {
		return nil, domain.ErrUserInactive
	}
	return actor, nil
}

// requireAdmin is the exact-match gate for admin-only operations.
func requireAdmin(actor *domain.User) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
