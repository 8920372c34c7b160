package main

import (
	"fmt"
	"log"

	"barbershop-backend/config"
	"barbershop-backend/models"
	"barbershop-backend/routes"
	"barbershop-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.CartItem{},
		&models.Offer{},
		&models.CustomerReview{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	services.NewBirthdayNotifier(db, cfg).StartScheduler()

	r := routes.SetupRouter(db, cfg)
	printRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
