package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reportlab/account-service/internal/api/metrics"
	"github.com/reportlab/account-service/internal/core/ports"
)

// UserHandler handles self-service account operations.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create registers a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.userService.Register(c.Request().Context(), ports.RegisterUserInput{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "user registration successful"})
}

// Me returns the authenticated user's own record.
//
// @Summary      Get own user record
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) Me(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Me(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword verifies the current password and stores a new digest.
//
// @Summary      Change own password
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Password change"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /users/change_password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.userService.ChangePassword(c.Request().Context(), principal, ports.ChangePasswordInput{
		CurrentPassword:   req.CurrentPassword,
		NewPassword:       req.NewPassword,
		NewPasswordRetype: req.NewPasswordRetype,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateInfo updates profile fields; at least one field must change.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  updateProfileRequest  true  "Profile fields"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /users/update_info [put]
func (h *UserHandler) UpdateInfo(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.userService.UpdateProfile(c.Request().Context(), principal, ports.UpdateProfileInput{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// NewRoleRequest submits a role-change request for admin approval.
//
// @Summary      Request a role change
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roleRequestRequest  true  "Requested role"
// @Success      201   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /users/new_role_request [post]
func (h *UserHandler) NewRoleRequest(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req roleRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	outcome, err := h.userService.RequestRoleChange(c.Request().Context(), principal, req.NewRoleRequested)
	if err != nil {
		return err
	}
	metrics.RoleRequestsTotal.WithLabelValues(string(outcome)).Inc()

	if outcome == ports.RoleRequestNoop {
		return c.JSON(http.StatusCreated, messageResponse{
			Message: "role change request is not valid: the requested role is already assigned",
		})
	}
	return c.JSON(http.StatusCreated, messageResponse{
		Message: "role change request submitted for approval",
	})
}
