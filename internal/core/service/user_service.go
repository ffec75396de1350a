package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/reportlab/account-service/internal/core/domain"
	"github.com/reportlab/account-service/internal/core/ports"
)

// UserService implements self-service account operations: registration,
// password change, profile updates, and role-change requests.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	taken, err := s.users.UsernameOrEmailTaken(ctx, in.Username, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:       in.Username,
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		HashedPassword: string(hash),
		IsActive:       true,
		Role:           domain.RoleB2C,
		PhoneNumber:    in.PhoneNumber,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *UserService) Me(ctx context.Context, principal ports.Principal) (*domain.User, error) {
	return loadActiveActor(ctx, s.users, principal)
}

func (s *UserService) ChangePassword(ctx context.Context, principal ports.Principal, in ports.ChangePasswordInput) error {
	actor, err := loadActiveActor(ctx, s.users, principal)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(actor.HashedPassword), []byte(in.CurrentPassword)) != nil {
		return domain.ErrPasswordMismatch
	}
	if in.NewPassword != in.NewPasswordRetype {
		return domain.ErrPasswordRetype
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	actor.HashedPassword = string(hash)

	return s.users.Update(ctx, actor)
}

func (s *UserService) UpdateProfile(ctx context.Context, principal ports.Principal, in ports.UpdateProfileInput) error {
	actor, err := loadActiveActor(ctx, s.users, principal)
	if err != nil {
		return err
	}

	username := applyChange(&actor.Username, in.Username)
	email := applyChange(&actor.Email, in.Email)
	changed := username || email
	changed = applyChange(&actor.FirstName, in.FirstName) || changed
	changed = applyChange(&actor.LastName, in.LastName) || changed
	changed = applyChange(&actor.PhoneNumber, in.PhoneNumber) || changed
	if !changed {
		return domain.ErrNothingChanged
	}

	if username || email {
		taken, err := s.users.UsernameOrEmailTaken(ctx, actor.Username, actor.Email, actor.ID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrUserExists
		}
	}

	return s.users.Update(ctx, actor)
}

// applyChange writes *next over *field when it is present and different,
// reporting whether anything changed.
func applyChange(field *string, next *string) bool {
	if next == nil || *next == *field {
		return false
	}
	*field = *next
	return true
}

func (s *UserService) RequestRoleChange(ctx context.Context, principal ports.Principal, newRole string) (ports.RoleRequestOutcome, error) {
	actor, err := loadActiveActor(ctx, s.users, principal)
	if err != nil {
		return "", err
	}

	if !domain.KnownRole(newRole) {
		return "", domain.ErrUnknownRole
	}

	if !actor.SubmitRoleRequest(newRole) {
		return ports.RoleRequestNoop, nil
	}
	if err := s.users.Update(ctx, actor); err != nil {
		return "", err
	}

	s.logger.Info().Int64("user_id", actor.ID).Str("requested_role", newRole).Msg("role change requested")
	return ports.RoleRequestSubmitted, nil
}
