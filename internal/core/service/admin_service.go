package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reportlab/account-service/internal/core/domain"
	"github.com/reportlab/account-service/internal/core/ports"
)

const defaultPageLimit = 10

// AdminService implements the admin-only operations: the cached user
// listing, activation toggling, and role-change approval.
type AdminService struct {
	users  ports.UserRepository
	cache  ports.ListingCache
	logger zerolog.Logger
}

func NewAdminService(users ports.UserRepository, cache ports.ListingCache, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, cache: cache, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context, principal ports.Principal, page, limit int) ([]domain.User, error) {
	if err := s.admit(ctx, principal); err != nil {
		return nil, err
	}

	if page < 0 {
		page = 0
	}
	if limit <= 0 || limit > 100 {
		limit = defaultPageLimit
	}
	offset := page * limit

	if users, ok := s.cache.GetPage(ctx, offset, limit); ok {
		return users, nil
	}

	users, err := s.users.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	s.cache.SetPage(ctx, offset, limit, users)
	return users, nil
}

func (s *AdminService) SetUserActive(ctx context.Context, principal ports.Principal, userID int64, active bool) error {
	if err := s.admit(ctx, principal); err != nil {
		return err
	}

	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsActive = active
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", userID).Bool("is_active", active).Msg("user activation changed")
	return nil
}

func (s *AdminService) ApproveRoleChange(ctx context.Context, principal ports.Principal, userID int64) (ports.RoleApprovalOutcome, error) {
	if err := s.admit(ctx, principal); err != nil {
		return "", err
	}

	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if !user.ApproveRoleRequest() {
		return ports.RoleApprovalNotPending, nil
	}
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info().Int64("user_id", userID).Str("role", user.Role).Msg("role change approved")
	return ports.RoleApproved, nil
}

func (s *AdminService) admit(ctx context.Context, principal ports.Principal) error {
	actor, err := loadActiveActor(ctx, s.users, principal)
	if err != nil {
		return err
	}
	return requireAdmin(actor)
}
