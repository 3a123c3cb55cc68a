package entity

import (
	"gorm.io/gorm"
)

type Currency struct {
	gorm.Model
	Title string `gorm:"size:20;not null" json:"title"`

	Restaurants []Restaurant `json:"-"`
}
