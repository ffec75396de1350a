package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reportlab/account-service/internal/core/domain"
	"github.com/reportlab/account-service/internal/core/ports"
)

// AccountService orchestrates client and partner onboarding: policy checks,
// uniqueness validation, ID allocation, and persistence, all inside one
// Entity Store transaction per registration.
type AccountService struct {
	users    ports.UserRepository
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewAccountService(users ports.UserRepository, accounts ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{users: users, accounts: accounts, logger: logger}
}

func (s *AccountService) RegisterClient(ctx context.Context, principal ports.Principal, in ports.RegisterClientInput) (*domain.ClientInfo, error) {
	actor, err := loadActiveActor(ctx, s.users, principal)
	if err != nil {
		return nil, err
	}
	if !domain.AccountRegistrationRoles.Allows(actor.Role) {
		return nil, domain.ErrForbidden
	}

	currency := in.CurrencyType
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	var created *domain.ClientInfo
	err = s.accounts.Tx(ctx, func(tx ports.AccountTx) error {
		existing, err := tx.ClientByOwner(ctx, actor.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrClientExists
		}

		taken, err := tx.ClientShortNameTaken(ctx, in.CompanyShortName)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrCompanyNameTaken
		}

		count, err := tx.CountClients(ctx)
		if err != nil {
			return err
		}

		client := &domain.ClientInfo{
			ClientID:         nextClientID(count),
			CompanyShortName: in.CompanyShortName,
			CompanyFullName:  in.CompanyFullName,
			CompanyEmail:     in.CompanyEmail,
			CompanyPhone:     in.CompanyPhone,
			CompanyWebsite:   in.CompanyWebsite,
			CompanyAddress:   in.CompanyAddress,
			CurrencyType:     currency,
			OwnerID:          actor.ID,
		}
		if err := tx.InsertClient(ctx, client); err != nil {
			return err
		}
		created = client
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("client_id", created.ClientID).
		Int64("owner_id", actor.ID).
		Msg("client registered")
	return created, nil
}

func (s *AccountService) RegisterPartner(ctx context.Context, principal ports.Principal, in ports.RegisterPartnerInput) (*domain.PartnerInfo, error) {
	actor, err := loadActiveActor(ctx, s.users, principal)
	if err != nil {
		return nil, err
	}
	if !domain.AccountRegistrationRoles.Allows(actor.Role) {
		return nil, domain.ErrForbidden
	}

	// The user being sponsored becomes the partner record's owner.
	partnerUser, err := s.users.ByUsername(ctx, in.PartnerUsername)
	if err != nil {
		return nil, err
	}

	var created *domain.PartnerInfo
	err = s.accounts.Tx(ctx, func(tx ports.AccountTx) error {
		// Client registration must precede partner sponsorship.
		sponsor, err := tx.ClientByOwner(ctx, actor.ID)
		if err != nil {
			return err
		}
		if sponsor == nil {
			return domain.ErrClientRequired
		}

		pair, err := tx.PartnerByClientAndOwner(ctx, sponsor.ClientID, partnerUser.ID)
		if err != nil {
			return err
		}
		if pair != nil {
			return domain.ErrPartnerExists
		}

		// A user sponsored under any client keeps the same partner
		// identity everywhere; allocate only on first sponsorship.
		partnerID, err := reuseOrAllocatePartnerID(ctx, tx, partnerUser.ID)
		if err != nil {
			return err
		}

		taken, err := tx.PartnerShortNameTaken(ctx, in.CompanyShortName)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrCompanyNameTaken
		}

		partner := &domain.PartnerInfo{
			PartnerID:        partnerID,
			CompanyShortName: in.CompanyShortName,
			CompanyFullName:  in.CompanyFullName,
			CompanyEmail:     in.CompanyEmail,
			CompanyPhone:     in.CompanyPhone,
			CompanyWebsite:   in.CompanyWebsite,
			CompanyAddress:   in.CompanyAddress,
			BillTo:           in.BillTo,
			CurrencyType:     domain.EffectiveCurrency(in.BillTo, in.CurrencyType),
			ClientID:         sponsor.ClientID,
			OwnerID:          partnerUser.ID,
		}
		if err := tx.InsertPartner(ctx, partner); err != nil {
			return err
		}
		created = partner
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("partner_id", created.PartnerID).
		Str("client_id", created.ClientID).
		Int64("owner_id", partnerUser.ID).
		Msg("partner registered")
	return created, nil
}

func reuseOrAllocatePartnerID(ctx context.Context, tx ports.AccountTx, ownerID int64) (string, error) {
	existing, err := tx.PartnerByOwner(ctx, ownerID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.PartnerID, nil
	}

	maxRow, err := tx.MaxPartnerRow(ctx)
	if err != nil {
		return "", err
	}
	return nextPartnerID(maxRow), nil
}
