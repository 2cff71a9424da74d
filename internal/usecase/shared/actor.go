package shared

import "github.com/google/uuid"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Actor is the authenticated caller as established by the auth
// middleware. Admin actors carry the shop their token is scoped to.
type Actor struct {
	UserID uuid.UUID
	Role   string
	ShopID *uuid.UUID
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManageShop reports whether the actor may act as an admin of the
// given shop.
func (a Actor) CanManageShop(shopID uuid.UUID) bool {
	return a.IsAdmin() && a.ShopID != nil && *a.ShopID == shopID
}
