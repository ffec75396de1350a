package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/reportlab/account-service/internal/core/domain"
	"github.com/reportlab/account-service/internal/core/ports"
)

// AccountRepository implements ports.AccountRepository on PostgreSQL. Every
// registration runs inside a single *sql.Tx so the uniqueness checks, ID
// allocation, and insert cannot interleave with a concurrent registration's
// insert of the same key; a unique-index violation at commit is translated to
// the matching domain conflict.
type AccountRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewAccountRepository(db *sql.DB, logger zerolog.Logger) *AccountRepository {
	return &AccountRepository{db: db, logger: logger}
}

func (r *AccountRepository) Tx(ctx context.Context, fn func(tx ports.AccountTx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(&accountTx{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		if conflict := conflictError(err); conflict != nil {
			return conflict
		}
		r.logger.Error().Err(err).Msg("account tx commit failed")
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type accountTx struct {
	tx *sql.Tx
}

const clientColumns = `id, client_id, company_short_name, company_full_name, company_email,
	company_phone, company_website, company_address, currency_type, owner_id`

func (t *accountTx) ClientByOwner(ctx context.Context, ownerID int64) (*domain.ClientInfo, error) {
	query := `SELECT ` + clientColumns + ` FROM client_info WHERE owner_id = $1`

	var (
		client  domain.ClientInfo
		website sql.NullString
		address sql.NullString
	)
	err := t.tx.QueryRowContext(ctx, query, ownerID).Scan(
		&client.ID,
		&client.ClientID,
		&client.CompanyShortName,
		&client.CompanyFullName,
		&client.CompanyEmail,
		&client.CompanyPhone,
		&website,
		&address,
		&client.CurrencyType,
		&client.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("client by owner: %w", err)
	}
	client.CompanyWebsite = website.String
	client.CompanyAddress = address.String
	return &client, nil
}

func (t *accountTx) ClientShortNameTaken(ctx context.Context, name string) (bool, error) {
	return t.exists(ctx, `SELECT EXISTS (SELECT 1 FROM client_info WHERE company_short_name = $1)`, name)
}

func (t *accountTx) CountClients(ctx context.Context) (int64, error) {
	var count int64
	if err := t.tx.QueryRowContext(ctx, `SELECT COUNT(id) FROM client_info`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return count, nil
}

func (t *accountTx) InsertClient(ctx context.Context, client *domain.ClientInfo) error {
	query := `
		INSERT INTO client_info (client_id, company_short_name, company_full_name,
			company_email, company_phone, company_website, company_address,
			currency_type, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := t.tx.QueryRowContext(ctx, query,
		client.ClientID,
		client.CompanyShortName,
		client.CompanyFullName,
		client.CompanyEmail,
		client.CompanyPhone,
		nullString(client.CompanyWebsite),
		nullString(client.CompanyAddress),
		client.CurrencyType,
		client.OwnerID,
	).Scan(&client.ID)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

const partnerColumns = `id, partner_id, company_short_name, company_full_name, company_email,
	company_phone, company_website, company_address, bill_to, currency_type, client_id, owner_id`

func (t *accountTx) PartnerByOwner(ctx context.Context, ownerID int64) (*domain.PartnerInfo, error) {
	query := `SELECT ` + partnerColumns + ` FROM partner_info WHERE owner_id = $1 LIMIT 1`
	return t.scanPartner(ctx, query, ownerID)
}

func (t *accountTx) PartnerByClientAndOwner(ctx context.Context, clientID string, ownerID int64) (*domain.PartnerInfo, error) {
	query := `SELECT ` + partnerColumns + ` FROM partner_info WHERE client_id = $1 AND owner_id = $2`
	return t.scanPartner(ctx, query, clientID, ownerID)
}

func (t *accountTx) PartnerShortNameTaken(ctx context.Context, name string) (bool, error) {
	return t.exists(ctx, `SELECT EXISTS (SELECT 1 FROM partner_info WHERE company_short_name = $1)`, name)
}

func (t *accountTx) MaxPartnerRow(ctx context.Context) (int64, error) {
	var max int64
	if err := t.tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM partner_info`).Scan(&max); err != nil {
		return 0, fmt.Errorf("max partner row: %w", err)
	}
	return max, nil
}

func (t *accountTx) InsertPartner(ctx context.Context, partner *domain.PartnerInfo) error {
	query := `
		INSERT INTO partner_info (partner_id, company_short_name, company_full_name,
			company_email, company_phone, company_website, company_address,
			bill_to, currency_type, client_id, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := t.tx.QueryRowContext(ctx, query,
		partner.PartnerID,
		partner.CompanyShortName,
		partner.CompanyFullName,
		partner.CompanyEmail,
		partner.CompanyPhone,
		nullString(partner.CompanyWebsite),
		nullString(partner.CompanyAddress),
		partner.BillTo,
		nullString(partner.CurrencyType),
		partner.ClientID,
		partner.OwnerID,
	).Scan(&partner.ID)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

func (t *accountTx) scanPartner(ctx context.Context, query string, args ...any) (*domain.PartnerInfo, error) {
	var (
		partner  domain.PartnerInfo
		website  sql.NullString
		address  sql.NullString
		currency sql.NullString
	)
	err := t.tx.QueryRowContext(ctx, query, args...).Scan(
		&partner.ID,
		&partner.PartnerID,
		&partner.CompanyShortName,
		&partner.CompanyFullName,
		&partner.CompanyEmail,
		&partner.CompanyPhone,
		&website,
		&address,
		&partner.BillTo,
		&currency,
		&partner.ClientID,
		&partner.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find partner: %w", err)
	}
	partner.CompanyWebsite = website.String
	partner.CompanyAddress = address.String
	partner.CurrencyType = currency.String
	return &partner, nil
}

func (t *accountTx) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("existence check: %w", err)
	}
	return found, nil
}

// conflictError maps a unique-constraint violation to the domain conflict it
// guards, using the violated constraint's name. Nil when err is not a
// uniqueness conflict.
func conflictError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code.Name() != "unique_violation" {
		return nil
	}
	switch {
	case strings.Contains(pqErr.Constraint, "company_short_name"):
		return domain.ErrCompanyNameTaken
	case strings.Contains(pqErr.Constraint, "owner_id") && strings.Contains(pqErr.Constraint, "client_info"):
		return domain.ErrClientExists
	case strings.Contains(pqErr.Constraint, "partner_info"):
		return domain.ErrPartnerExists
	default:
		return domain.ErrClientExists
	}
}
