package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/reportlab/account-service/internal/api/metrics"
	"github.com/reportlab/account-service/internal/core/ports"
)

// AdminHandler handles admin-only user management.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers returns a page of all user records.
//
// @Summary      List users (paged)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (0-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {array}   domain.User
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	users, err := h.adminService.ListUsers(c.Request().Context(), principal, page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Activate re-enables a deactivated user account.
//
// @Summary      Activate a user
// @Tags         admin
// @Security     BearerAuth
// @Param        user_id  path  int  true  "User ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/activate/{user_id} [put]
func (h *AdminHandler) Activate(c echo.Context) error {
	return h.setActive(c, true)
}

// Deactivate disables a user account without deleting it.
//
// @Summary      Deactivate a user
// @Tags         admin
// @Security     BearerAuth
// @Param        user_id  path  int  true  "User ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/deactivate/{user_id} [put]
func (h *AdminHandler) Deactivate(c echo.Context) error {
	return h.setActive(c, false)
}

func (h *AdminHandler) setActive(c echo.Context, active bool) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	userID, err := pathUserID(c)
	if err != nil {
		return err
	}

	if err := h.adminService.SetUserActive(c.Request().Context(), principal, userID, active); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ApproveNewRole applies a pending role-change request.
//
// @Summary      Approve a role-change request
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      int  true  "User ID"
// @Success      200      {object}  messageResponse
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /admin/approve_new_role/{user_id} [put]
func (h *AdminHandler) ApproveNewRole(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	userID, err := pathUserID(c)
	if err != nil {
		return err
	}

	outcome, err := h.adminService.ApproveRoleChange(c.Request().Context(), principal, userID)
	if err != nil {
		return err
	}
	metrics.RoleApprovalsTotal.WithLabelValues(string(outcome)).Inc()

	if outcome == ports.RoleApprovalNotPending {
		return c.JSON(http.StatusOK, messageResponse{
			Message: "no pending role change request found, please submit one via the new_role_request endpoint",
		})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user role updated successfully"})
}

func pathUserID(c echo.Context) (int64, error) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return userID, nil
}
