package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reportlab/account-service/internal/core/ports"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// performs a fast-fail check before any service call: a zero id or empty
// role means the middleware did not run or the token lacked the claims.
func ctxPrincipal(c echo.Context) (ports.Principal, error) {
	id, _ := c.Get("user_id").(int64)
	role, _ := c.Get("user_role").(string)
	if id == 0 || role == "" {
		return ports.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	return ports.Principal{ID: id, Username: username, Role: role}, nil
}
