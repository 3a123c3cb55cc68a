package controllers

import (
	"dashboard/configs"
	"dashboard/pkg/resp"
	"dashboard/repository"
	"dashboard/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Users *repository.UserRepository
	Cfg   *configs.Config
}

func NewAuthController(users *repository.UserRepository, cfg *configs.Config) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := ctl.Users.FindByEmail(req.Email)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(u.ID, u.Role, u.RestaurantID, ctl.Cfg.JWTSecret, ctl.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "role": u.Role, "restaurantId": u.RestaurantID})
}
