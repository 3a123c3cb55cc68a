package services

import (
	"dashboard/entity"
)

// Action is a capability checked before a handler touches anything.
type Action string

const (
	// ActionAccess: read dashboards and listings.
	ActionAccess Action = "access"
	// ActionUpdate: change an order's status or add items to it.
	ActionUpdate Action = "update"
	// ActionManageCurrencies: currency CRUD.
	ActionManageCurrencies Action = "manage-currencies"
)

// Can reports whether the actor may perform action on the resource. Admins
// may do anything; managers and waiters only act within their own restaurant,
// and only managers touch reference data.
func Can(actor *entity.User, action Action, resource any) bool {
	if actor == nil {
		return false
	}
	if actor.Role == entity.RoleAdmin {
		return true
	}

	switch action {
	case ActionManageCurrencies:
		return actor.Role == entity.RoleManager
	case ActionAccess, ActionUpdate:
		return sameRestaurant(actor, resource)
	}
	return false
}

func sameRestaurant(actor *entity.User, resource any) bool {
	if actor.RestaurantID == nil {
		return false
	}
	switch res := resource.(type) {
	case *entity.Restaurant:
		return res != nil && res.ID == *actor.RestaurantID
	case *entity.Order:
		return res != nil && res.RestaurantID == *actor.RestaurantID
	case uint: // a bare restaurant id
		return res == *actor.RestaurantID
	}
	return false
}
