package services

import (
	"campuseats-be/entity"
)

// Capability names a permission granted to a minimum admin role tier.
type Capability string

const (
	CapToggleStock    Capability = "toggle-stock"
	CapManageOrders   Capability = "manage-orders"
	CapManageMenu     Capability = "manage-menu"
	CapManageDelivery Capability = "manage-delivery"
	CapManageShop     Capability = "manage-shop"
	CapVerifyPayments Capability = "verify-payments"
	CapManageAdmins   Capability = "manage-admins"
)

// roleRank orders the tiers; each tier inherits everything below it.
var roleRank = map[string]int{
	entity.RoleModerator:  1,
	entity.RoleAdmin:      2,
	entity.RoleSuperAdmin: 3,
}

// minimum tier required per capability
var capabilityTier = map[Capability]int{
	CapToggleStock:    roleRank[entity.RoleModerator],
	CapManageOrders:   roleRank[entity.RoleModerator],
	CapManageMenu:     roleRank[entity.RoleAdmin],
	CapManageDelivery: roleRank[entity.RoleAdmin],
	CapManageShop:     roleRank[entity.RoleAdmin],
	CapVerifyPayments: roleRank[entity.RoleAdmin],
	CapManageAdmins:   roleRank[entity.RoleSuperAdmin],
}

// RoleGrants reports whether the role's tier meets the capability's
// minimum tier. Unknown roles and capabilities grant nothing.
func RoleGrants(role string, cap Capability) bool {
	tier, ok := roleRank[role]
	if !ok {
		return false
	}
	min, ok := capabilityTier[cap]
	if !ok {
		return false
	}
	return tier >= min
}
