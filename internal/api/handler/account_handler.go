package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reportlab/account-service/internal/api/metrics"
	"github.com/reportlab/account-service/internal/core/ports"
)

// AccountHandler handles client and partner registration.
type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateClientInfo registers the acting user's organization as a client.
//
// @Summary      Register a client organization
// @Tags         client
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  createClientResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /client/create_client_info [post]
func (h *AccountHandler) CreateClientInfo(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.accountService.RegisterClient(c.Request().Context(), principal, ports.RegisterClientInput{
		CompanyShortName: req.CompanyShortName,
		CompanyFullName:  req.CompanyFullName,
		CompanyEmail:     req.CompanyEmail,
		CompanyPhone:     req.CompanyPhone,
		CompanyWebsite:   req.CompanyWebsite,
		CompanyAddress:   req.CompanyAddress,
		CurrencyType:     req.CurrencyType,
	})
	if err != nil {
		return err
	}

	metrics.ClientsRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, createClientResponse{
		Message:  "client registration successful",
		ClientID: client.ClientID,
	})
}

// CreatePartnerInfo sponsors an existing user as a partner of the acting
// user's client organization.
//
// @Summary      Register a partner sub-account
// @Tags         client
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPartnerRequest  true  "Partner details"
// @Success      201   {object}  createPartnerResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /client/create_partner_info [post]
func (h *AccountHandler) CreatePartnerInfo(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createPartnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	partner, err := h.accountService.RegisterPartner(c.Request().Context(), principal, ports.RegisterPartnerInput{
		PartnerUsername:  req.PartnerUsername,
		CompanyShortName: req.CompanyShortName,
		CompanyFullName:  req.CompanyFullName,
		CompanyEmail:     req.CompanyEmail,
		CompanyPhone:     req.CompanyPhone,
		CompanyWebsite:   req.CompanyWebsite,
		CompanyAddress:   req.CompanyAddress,
		BillTo:           req.BillTo,
		CurrencyType:     req.CurrencyType,
	})
	if err != nil {
		return err
	}

	metrics.PartnersRegisteredTotal.WithLabelValues(partner.BillTo).Inc()
	return c.JSON(http.StatusCreated, createPartnerResponse{
		Message:   "partner registration successful",
		PartnerID: partner.PartnerID,
		ClientID:  partner.ClientID,
	})
}
