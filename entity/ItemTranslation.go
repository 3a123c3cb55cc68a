package entity

import (
	"gorm.io/gorm"
)

type ItemTranslation struct {
	gorm.Model
	Locale string `gorm:"size:5;index:idx_item_locale" json:"locale"`
	Name   string `json:"name"`

	ItemID uint `gorm:"index:idx_item_locale" json:"itemId"`
	Item   Item `json:"-"`
}
