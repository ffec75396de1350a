package ports

import (
	"context"

	"github.com/reportlab/account-service/internal/core/domain"
)

type RegisterClientInput struct {
	CompanyShortName string
	CompanyFullName  string
	CompanyEmail     string
	CompanyPhone     string
	CompanyWebsite   string
	CompanyAddress   string
	CurrencyType     string
}

type RegisterPartnerInput struct {
	PartnerUsername  string
	CompanyShortName string
	CompanyFullName  string
	CompanyEmail     string
	CompanyPhone     string
	CompanyWebsite   string
	CompanyAddress   string
	BillTo           string
	CurrencyType     string
}

type AccountService interface {
	RegisterClient(ctx context.Context, principal Principal, in RegisterClientInput) (*domain.ClientInfo, error)
	RegisterPartner(ctx context.Context, principal Principal, in RegisterPartnerInput) (*domain.PartnerInfo, error)
}
