package utils

import (
	"dashboard/entity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRestaurantID(c *gin.Context) *uint {
	if v, ok := c.Get("restaurantId"); ok {
		if id, ok := v.(*uint); ok {
			return id
		}
	}
	return nil
}

// CurrentActor rebuilds the acting staff member from the token claims the
// auth middleware stored in the context. Enough for capability checks without
// a user lookup per request.
func CurrentActor(c *gin.Context) *entity.User {
	return &entity.User{
		Model:        gorm.Model{ID: CurrentUserID(c)},
		Role:         CurrentRole(c),
		RestaurantID: CurrentRestaurantID(c),
	}
}
