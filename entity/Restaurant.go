package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name   string `json:"name"`
	Locale string `gorm:"size:5;default:en" json:"locale"`

	CurrencyID uint     `json:"currencyId"`
	Currency   Currency `json:"-"` // preload when formatting prices

	Staff  []User  `gorm:"foreignKey:RestaurantID" json:"-"`
	Items  []Item  `json:"-"`
	Orders []Order `json:"-"`
}
