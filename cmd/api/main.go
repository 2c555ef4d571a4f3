package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/justsurfingit/Agentic-Lead-Gen/internal/config"
	"github.com/justsurfingit/Agentic-Lead-Gen/internal/database"
	"github.com/justsurfingit/Agentic-Lead-Gen/internal/handlers"
	"github.com/justsurfingit/Agentic-Lead-Gen/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error:", err)
	}

	// 2. Database Connection
	db := database.Connect(cfg)

	// 3. Initialize Core Services (Dependencies)
	llmService := services.NewLLMService(cfg)
	scraperService := services.NewScraperService(cfg)
	leadService := services.NewLeadService(db)

	// 4. Initialize Handlers
	leadHandler := handlers.NewLeadHandler(llmService, scraperService, leadService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	r.GET("/api/v1/health", handlers.HealthCheck)
	r.POST("/generate-leads", leadHandler.GenerateLeads)

	log.Printf("🚀 Server starting on port %s...", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
