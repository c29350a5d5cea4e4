package account

type Role string

const (
	RoleCleaner Role = "cleaner"
	RoleClient  Role = "client"
)

// Roles lists every known role; the sweeper iterates over it.
func Roles() []Role {
	return []Role{RoleCleaner, RoleClient}
}

func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCleaner:
		return RoleCleaner, true
	case RoleClient:
		return RoleClient, true
	}
	return Role(""), false
}
