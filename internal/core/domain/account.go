package domain

// Billing modes for partner sub-accounts.
const (
	BillToClient  = "client"
	BillToPartner = "partner"
)

// DefaultCurrency is applied to client records when no currency is requested.
const DefaultCurrency = "USD"

// ClientInfo represents one billable organization, administered by exactly
// one owning user. A user may register as client at most once.
type ClientInfo struct {
	ID               int64  `json:"-"`
	ClientID         string `json:"client_id"`
	CompanyShortName string `json:"company_short_name"`
	CompanyFullName  string `json:"company_full_name"`
	CompanyEmail     string `json:"company_email"`
	CompanyPhone     string `json:"company_phone"`
	CompanyWebsite   string `json:"company_website"`
	CompanyAddress   string `json:"company_address"`
	CurrencyType     string `json:"currency_type"`
	OwnerID          int64  `json:"owner_id"`
}

// PartnerInfo represents a sub-account sponsored by a client. PartnerID is
// stable per owning user across sponsorships; the (ClientID, OwnerID) pair is
// unique. CurrencyType is empty exactly when BillTo is "client".
type PartnerInfo struct {
	ID               int64  `json:"-"`
	PartnerID        string `json:"partner_id"`
	CompanyShortName string `json:"company_short_name"`
	CompanyFullName  string `json:"company_full_name"`
	CompanyEmail     string `json:"company_email"`
	CompanyPhone     string `json:"company_phone"`
	CompanyWebsite   string `json:"company_website"`
	CompanyAddress   string `json:"company_address"`
	BillTo           string `json:"bill_to"`
	CurrencyType     string `json:"currency_type,omitempty"`
	ClientID         string `json:"client_id"`
	OwnerID          int64  `json:"owner_id"`
}

// EffectiveCurrency enforces the bill-to cross-field rule at write time:
// the requested currency passes through only when the partner is billed
// directly; client-billed partners persist no currency.
func EffectiveCurrency(billTo, requested string) string {
	if billTo == BillToPartner {
		return requested
	}
	return ""
}
