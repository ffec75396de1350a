package ports

import (
	"context"

	"github.com/reportlab/account-service/internal/core/domain"
)

// AccountTx is the set of Entity Store operations available inside one
// registration transaction. Lookups that can miss return (nil, nil) so the
// caller distinguishes absence from store failure.
type AccountTx interface {
	ClientByOwner(ctx context.Context, ownerID int64) (*domain.ClientInfo, error)
	ClientShortNameTaken(ctx context.Context, name string) (bool, error)
	CountClients(ctx context.Context) (int64, error)
	InsertClient(ctx context.Context, client *domain.ClientInfo) error

	PartnerByOwner(ctx context.Context, ownerID int64) (*domain.PartnerInfo, error)
	PartnerByClientAndOwner(ctx context.Context, clientID string, ownerID int64) (*domain.PartnerInfo, error)
	PartnerShortNameTaken(ctx context.Context, name string) (bool, error)
	MaxPartnerRow(ctx context.Context) (int64, error)
	InsertPartner(ctx context.Context, partner *domain.PartnerInfo) error
}

// AccountRepository scopes client/partner persistence to a single atomic
// transaction: fn's checks, ID allocation, and insert either all commit or
// all roll back. A unique-constraint violation at commit surfaces as the
// matching domain conflict error.
type AccountRepository interface {
	Tx(ctx context.Context, fn func(tx AccountTx) error) error
}
