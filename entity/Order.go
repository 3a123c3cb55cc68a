package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TableNumber int         `json:"tableNumber"`
	Comment     string      `json:"comment"`
	Status      OrderStatus `gorm:"index" json:"status"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload when formatting prices

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"-"` // preload on detail only
}
