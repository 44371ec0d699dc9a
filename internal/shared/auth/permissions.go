// Package auth holds helpers for interpreting the permission flags the chat
// platform attaches to inbound requests. The engine never stores roles or
// permissions itself; it only trusts what the collaborator asserts.
package auth

// MemberPermissions mirrors the permission flags supplied by the chat
// platform with each command event.
type MemberPermissions struct {
	Administrator   bool     `json:"administrator"`
	ManageCommunity bool     `json:"manage_community"`
	RoleIDs         []string `json:"role_ids"`
}

// CanConfigure reports whether the member may mutate a community policy:
// administrators, members with the manage-community permission, or holders
// of the configured admin role.
func (p MemberPermissions) CanConfigure(adminRoleID string) bool {
	if p.Administrator || p.ManageCommunity {
		return true
	}
	return adminRoleID != "" && HasRole(p.RoleIDs, adminRoleID)
}

// HasRole checks if the role list contains a specific role
func HasRole(roles []string, targetRole string) bool {
	for _, role := range roles {
		if role == targetRole {
			return true
		}
	}
	return false
}
