package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	// Price is copied from the menu item when the row is created. Later menu
	// price changes must not alter historical orders.
	Price   decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Amount  int             `json:"amount"`
	Comment string          `json:"comment"`
	Status  OrderItemStatus `gorm:"index" json:"status"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ItemID uint `json:"itemId"`
	Item   Item `json:"-"` // preload when the menu name is needed
}
