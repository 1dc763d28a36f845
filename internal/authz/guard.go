package authz

import (
	"github.com/google/uuid"
	"github.com/shopcore-labs/shopcore/internal/models"
)

// Decision is the outcome of an authorization check. Reason is for logs
// and error detail; it is never used for control flow beyond Allowed.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Guard evaluates (principal, resource, action) predicates. Services
// call it before any state is touched; a denial short-circuits the
// operation with no side effects.
type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

// RequireRole is the role predicate: the principal's role must match.
func (g *Guard) RequireRole(claims *models.Claims, role models.Role) Decision {

	if claims == nil {
		return Deny("no authenticated principal")
	}

	if claims.Role != role {
		return Deny("requires role " + string(role))
	}

	return Allow()
}

// RequireOwnerOrAdmin is the combination rule used throughout:
// administrators bypass ownership entirely, everyone else must own the
// resource.
func (g *Guard) RequireOwnerOrAdmin(claims *models.Claims, ownerID uuid.UUID) Decision {

	if claims == nil {
		return Deny("no authenticated principal")
	}

	if claims.IsAdmin() {
		return Allow()
	}

	if claims.UserID != ownerID {
		return Deny("resource belongs to another user")
	}

	return Allow()
}

// RequireCartAccess handles the nullable cart owner: a guest cart is
// keyed by its id alone, so holding the id grants access. Owned carts
// follow the owner-or-admin rule.
func (g *Guard) RequireCartAccess(claims *models.Claims, cart *models.Cart) Decision {

	if cart == nil {
		return Deny("no cart")
	}

	if !cart.UserID.Valid {
		return Allow()
	}

	return g.RequireOwnerOrAdmin(claims, cart.UserID.UUID)
}
