package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/reportlab/account-service/internal/core/domain"
)

const userColumns = `id, username, email, first_name, last_name, hashed_password,
	is_active, role, new_role_requested, new_role_request_pending, phone_number`

// UserRepository implements ports.UserRepository on PostgreSQL.
type UserRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewUserRepository(db *sql.DB, logger zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, first_name, last_name, hashed_password,
			is_active, role, new_role_requested, new_role_request_pending, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.HashedPassword,
		user.IsActive,
		user.Role,
		nullString(user.RequestedRole),
		user.RoleRequestPending,
		nullString(user.PhoneNumber),
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		r.logger.Error().Err(err).Str("username", user.Username).Msg("insert user failed")
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) ByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) ByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *UserRepository) UsernameOrEmailTaken(ctx context.Context, username, email string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE (username = $1 OR email = $2) AND id <> $3
		)
	`

	var taken bool
	if err := r.db.QueryRowContext(ctx, query, username, email, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("check username/email: %w", err)
	}
	return taken, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $1, email = $2, first_name = $3, last_name = $4,
			hashed_password = $5, is_active = $6, role = $7,
			new_role_requested = $8, new_role_request_pending = $9, phone_number = $10
		WHERE id = $11
	`

	result, err := r.db.ExecContext(ctx, query,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.HashedPassword,
		user.IsActive,
		user.Role,
		nullString(user.RequestedRole),
		user.RoleRequestPending,
		nullString(user.PhoneNumber),
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0, limit)
	for rows.Next() {
		var (
			user          domain.User
			requestedRole sql.NullString
			phone         sql.NullString
		)
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.FirstName,
			&user.LastName,
			&user.HashedPassword,
			&user.IsActive,
			&user.Role,
			&requestedRole,
			&user.RoleRequestPending,
			&phone,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		user.RequestedRole = requestedRole.String
		user.PhoneNumber = phone.String
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var (
		user          domain.User
		requestedRole sql.NullString
		phone         sql.NullString
	)
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.HashedPassword,
		&user.IsActive,
		&user.Role,
		&requestedRole,
		&user.RoleRequestPending,
		&phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user.RequestedRole = requestedRole.String
	user.PhoneNumber = phone.String
	return &user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
