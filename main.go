package main

import (
	"fmt"
	"log"

	"dashboard/configs"
	"dashboard/middlewares"
	"dashboard/routes"
	"dashboard/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// order update feed
	hub := ws.NewOrderHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
