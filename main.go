package main

import (
	"flag"
	"log"
	"net/http"

	"chorsu-feast-api/config"
	"chorsu-feast-api/handlers"
	"chorsu-feast-api/notify"
	"chorsu-feast-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfgFile := flag.String("config", "", "config file (default is ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	gin.SetMode(cfg.GinMode)

	// Initialize database
	config.InitDB()

	// Wire the notification gateway
	if cfg.TelegramBotToken != "" {
		handlers.Notifier = notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
	} else {
		log.Println("Telegram credentials not set, notifications disabled")
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for the storefront and back-office frontends
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Chorsu Feast Hub API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍽 Welcome to the Chorsu Feast Hub API",
			"menu":    "/api/menu",
			"health":  "/health",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
