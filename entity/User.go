package entity

import (
	"gorm.io/gorm"
)

// Staff roles. Admins see every restaurant; managers and waiters only their own.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleWaiter  = "waiter"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:waiter" json:"role"`

	// nil for admins, set for restaurant staff
	RestaurantID *uint       `json:"restaurantId"`
	Restaurant   *Restaurant `json:"-"`
}
