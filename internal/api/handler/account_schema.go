package handler

type createClientRequest struct {
	CompanyShortName string `json:"company_short_name" validate:"required,min=4,max=10"`
	CompanyFullName  string `json:"company_full_name"  validate:"required,min=10,max=50"`
	CompanyEmail     string `json:"company_email"      validate:"required,email,min=10,max=50"`
	CompanyPhone     string `json:"company_phone"      validate:"required,min=10,max=15"`
	CompanyWebsite   string `json:"company_website"    validate:"required,min=5,max=30"`
	CompanyAddress   string `json:"company_address"    validate:"required,min=10,max=100"`
	CurrencyType     string `json:"currency_type"      validate:"omitempty,len=3"`
}

type createPartnerRequest struct {
	PartnerUsername  string `json:"partner_username"   validate:"required,min=3,max=20"`
	CompanyShortName string `json:"company_short_name" validate:"required,min=4,max=10"`
	CompanyFullName  string `json:"company_full_name"  validate:"required,min=10,max=50"`
	CompanyEmail     string `json:"company_email"      validate:"required,email,min=10,max=50"`
	CompanyPhone     string `json:"company_phone"      validate:"required,min=10,max=15"`
	CompanyWebsite   string `json:"company_website"    validate:"required,min=5,max=30"`
	CompanyAddress   string `json:"company_address"    validate:"required,min=10,max=100"`
	BillTo           string `json:"bill_to"            validate:"required,oneof=client partner"`
	CurrencyType     string `json:"currency_type"      validate:"required_if=BillTo partner,omitempty,len=3"`
}

type createClientResponse struct {
	Message  string `json:"message"`
	ClientID string `json:"client_id"`
}

type createPartnerResponse struct {
	Message   string `json:"message"`
	PartnerID string `json:"partner_id"`
	ClientID  string `json:"client_id"`
}
