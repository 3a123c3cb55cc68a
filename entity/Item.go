package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item is a menu item. Its price is the current menu price; order items copy
// it at creation time and never read it again.
type Item struct {
	gorm.Model
	Price decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Translations []ItemTranslation `json:"-"`
}
