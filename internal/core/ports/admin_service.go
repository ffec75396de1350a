package ports

import (
	"context"

	"github.com/reportlab/account-service/internal/core/domain"
)

// RoleApprovalOutcome distinguishes an applied approval from the
// informational no-op returned when no request is pending.
type RoleApprovalOutcome string

const (
	RoleApproved           RoleApprovalOutcome = "approved"
	RoleApprovalNotPending RoleApprovalOutcome = "not_pending"
)

type AdminService interface {
	// ListUsers returns the page*limit offset slice of all users,
	// served from the short-TTL listing cache when possible.
	ListUsers(ctx context.Context, principal Principal, page, limit int) ([]domain.User, error)
	SetUserActive(ctx context.Context, principal Principal, userID int64, active bool) error
	ApproveRoleChange(ctx context.Context, principal Principal, userID int64) (RoleApprovalOutcome, error)
}

// ListingCache memoises user-listing pages for a short TTL. It is advisory:
// both methods are best-effort and staleness up to the TTL is accepted, so
// implementations swallow their own errors.
type ListingCache interface {
	GetPage(ctx context.Context, offset, limit int) ([]domain.User, bool)
	SetPage(ctx context.Context, offset, limit int, users []domain.User)
}
