package domain

import "strings"

// Canonical role tags. The namespace is extensible (RegisterRole) but closed
// at request time: a role-change request for a tag outside the known set is
// rejected instead of silently creating an unreachable role.
const (
	RoleB2C      = "b2c"
	RoleClient   = "client"
	RolePartner  = "partner"
	RoleAdmin    = "admin"
	RoleHospital = "hospital"
	RoleCRM      = "CRM"
	RoleSales    = "sales"
	RoleLab      = "lab"
	RoleApprover = "approver"
)

var knownRoles = map[string]struct{}{
	RoleB2C:                  {},
	RoleClient:               {},
	RolePartner:              {},
	RoleAdmin:                {},
	RoleHospital:             {},
	strings.ToLower(RoleCRM): {},
	RoleSales:                {},
	RoleLab:                  {},
	RoleApprover:             {},
}

// KnownRole reports whether role is a recognised tag, case-insensitively.
func KnownRole(role string) bool {
	_, ok := knownRoles[strings.ToLower(role)]
	return ok
}

// RegisterRole adds an org-specific role tag to the known set. Call during
// startup, before requests are served; the set is not guarded by a lock.
func RegisterRole(role string) {
	knownRoles[strings.ToLower(role)] = struct{}{}
}

// RolePolicy is a case-insensitive allow-set for role-gated operations.
type RolePolicy struct {
	allowed []string
}

func NewRolePolicy(roles ...string) RolePolicy {
	return RolePolicy{allowed: roles}
}

// Allows reports whether role matches one of the allowed tags.
func (p RolePolicy) Allows(role string) bool {
	for _, a := range p.allowed {
		if strings.EqualFold(a, role) {
			return true
		}
	}
	return false
}

// AccountRegistrationRoles gates client and partner registration.
var AccountRegistrationRoles = NewRolePolicy(RoleClient, RoleAdmin)
