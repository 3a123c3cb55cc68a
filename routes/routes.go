package routes

import (
	"dashboard/configs"
	"dashboard/controllers"
	"dashboard/middlewares"
	"dashboard/repository"
	"dashboard/services"
	"dashboard/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	currencyRepo := repository.NewCurrencyRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	// Services
	currencySvc := services.NewCurrencyService(currencyRepo)
	orderSvc := services.NewOrderService(db, orderRepo, orderItemRepo, restRepo)
	orderSvc.Notifier = hub
	orderItemSvc := services.NewOrderItemService(db, orderItemRepo, itemRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg)
	currencyCtrl := controllers.NewCurrencyController(currencySvc)
	orderCtrl := controllers.NewOrderController(orderSvc, restRepo)
	orderItemCtrl := controllers.NewOrderItemController(orderSvc, orderItemSvc)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	// Dashboard (staff only)
	d := r.Group("/dashboard", middlewares.AuthMiddleware(cfg))
	{
		d.GET("/currencies/data", currencyCtrl.Data)
		d.POST("/currencies", currencyCtrl.Create)
		d.GET("/currencies/:id", currencyCtrl.Show)
		d.POST("/currencies/:id", currencyCtrl.Update)
		d.POST("/currencies/:id/delete", currencyCtrl.Delete)

		d.GET("/restaurants/:id/orders/data", orderCtrl.Data)
		d.GET("/restaurants/:id/orders/closed-data", orderCtrl.ClosedData)
		d.GET("/restaurants/:id/orders/latest-update", orderCtrl.LatestUpdate)

		d.GET("/orders/:id/invoice", orderCtrl.Invoice)
		d.POST("/orders/:id/prepare", orderCtrl.Prepare)
		d.POST("/orders/:id/serve", orderCtrl.Serve)
		d.POST("/orders/:id/pay", orderCtrl.Pay)
		d.POST("/orders/:id/cancel", orderCtrl.Cancel)

		d.POST("/orders/:id/items", orderItemCtrl.Add)
		d.GET("/orders/:id/items/data", orderItemCtrl.Data)
	}

	// Order update feed
	r.GET("/ws/restaurants/:id/orders", middlewares.WSAuthMiddleware(cfg), hub.Handle)
}
