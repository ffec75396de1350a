package domain

import "strings"

// RoleRequestState is the explicit state of the role-escalation workflow.
type RoleRequestState string

const (
	RoleRequestStable  RoleRequestState = "stable"
	RoleRequestPending RoleRequestState = "pending"
)

// User models an account holder. RequestedRole and RoleRequestPending are the
// persistence projection of the role-request state machine; mutate them only
// through SubmitRoleRequest and ApproveRoleRequest.
type User struct {
	ID                 int64  `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	HashedPassword     string `json:"-"`
	IsActive           bool   `json:"is_active"`
	Role               string `json:"role"`
	RequestedRole      string `json:"new_role_requested,omitempty"`
	RoleRequestPending bool   `json:"new_role_request_pending"`
	PhoneNumber        string `json:"phone_number,omitempty"`
}

// RoleRequestState derives the workflow state. A pending flag with no
// requested role is treated as stable, never as a half-open request.
func (u *User) RoleRequestState() RoleRequestState {
	if u.RoleRequestPending && u.RequestedRole != "" {
		return RoleRequestPending
	}
	return RoleRequestStable
}

// SubmitRoleRequest transitions stable → pending. Requesting the role the
// user already holds is a no-op and returns false.
func (u *User) SubmitRoleRequest(role string) bool {
	if strings.EqualFold(role, u.Role) {
		return false
	}
	u.RequestedRole = role
	u.RoleRequestPending = true
	return true
}

// ApproveRoleRequest transitions pending → stable, overwriting the role with
// the requested value and clearing both request fields. Returns false when no
// request is pending; the user must resubmit.
func (u *User) ApproveRoleRequest() bool {
	if u.RoleRequestState() != RoleRequestPending {
		return false
	}
	u.Role = u.RequestedRole
	u.RequestedRole = ""
	u.RoleRequestPending = false
	return true
}
