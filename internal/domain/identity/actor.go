package identity

// Role as issued by the auth layer. Anything other than RoleAdmin carries no
// extra privilege; ownership is decided per resource.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleBuyer    Role = "buyer"
	RoleInvestor Role = "investor"
	RolePromoter Role = "promoter"
)

// Actor is the authenticated caller.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// Owns reports whether the actor is the given owning user.
func (a Actor) Owns(userID string) bool { return a.UserID != "" && a.UserID == userID }

// OwnsOrAdmin is the authorization rule used by every coordinator.
func (a Actor) OwnsOrAdmin(userID string) bool { return a.IsAdmin() || a.Owns(userID) }
