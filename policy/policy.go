// Package policy decides whether a caller may act on a resource.
package policy

// Caller is the identity carried by a verified session token.
type Caller struct {
	UserID   uint
	IsAdmin  bool
	Username string
}

// Resource is anything owned by a user. Articles and comments report their
// creator, users report themselves.
type Resource interface {
	OwnerID() uint
}

// Relation is the relationship a caller needs with a resource.
type Relation int

const (
	// OwnerOrAdmin allows the resource owner and any admin.
	OwnerOrAdmin Relation = iota
	// AdminOnly allows admins only, owners included.
	AdminOnly
)

// Authorize reports whether caller holds relation on res. A nil resource is
// only reachable through AdminOnly.
func Authorize(caller Caller, res Resource, relation Relation) bool {
	switch relation {
	case AdminOnly:
		return caller.IsAdmin
	case OwnerOrAdmin:
		if caller.IsAdmin {
			return true
		}
		return res != nil && caller.UserID != 0 && res.OwnerID() == caller.UserID
	default:
		return false
	}
}
