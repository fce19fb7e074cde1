package domain

import "time"

// Roles form a small closed set. Authorization is plain set membership per
// route; there is no computed hierarchy.
const (
	RoleAdministrator = "administrator"
	RoleOrganization  = "organization_member"
	RoleEventManager  = "event_manager"
	RoleIndividual    = "individual"
)

// NormalizeRole maps any absent or unrecognized role value to the
// lowest-privilege role. It is the single validation site for roles; both
// self-registration and admin-created users go through it.
func NormalizeRole(role string) string {
	switch role {
	case RoleAdministrator, RoleOrganization, RoleEventManager, RoleIndividual:
		return role
	default:
		return RoleIndividual
	}
}

// User models an account in the credential store. PasswordHash is never
// serialized into any response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
