package repository

import (
	"dashboard/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// Get loads a restaurant with its currency, which price formatting needs.
func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("Currency").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}
