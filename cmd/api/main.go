package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"skillpath/internal/config"
	"skillpath/internal/handlers"
	"skillpath/internal/repositories"
	"skillpath/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	assessmentRepo := repositories.NewAssessmentRepository(db)
	pathRepo := repositories.NewLearningPathRepository(db)
	batchRepo := repositories.NewRecommendationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize recommender
	recommender := services.NewRecommenderService(geminiService, batchRepo)
	log.Println("✅ Recommender service initialized")

	// Initialize handlers
	assessmentHandler := handlers.NewAssessmentHandler(assessmentRepo)
	pathHandler := handlers.NewLearningPathHandler(pathRepo)
	recommendationHandler := handlers.NewRecommendationHandler(batchRepo, recommender)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SkillPath API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token,Accept,Origin,Referer",
		MaxAge:       86400,
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/skill-assessments", assessmentHandler.Handle)
	api.Post("/learning-paths", pathHandler.Handle)
	api.Get("/learning-paths", pathHandler.HandleList)
	api.Post("/recommendations", recommendationHandler.Handle)
	api.Get("/recommendations", recommendationHandler.HandleList)
	api.Get("/recommendations/:id", recommendationHandler.HandleGet)
	api.Delete("/recommendations/:id", recommendationHandler.HandleDelete)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "SkillPath API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/skill-assessments",
				"POST /api/v1/learning-paths",
				"GET /api/v1/learning-paths",
				"POST /api/v1/recommendations",
				"GET /api/v1/recommendations",
				"GET /api/v1/recommendations/:id",
				"DELETE /api/v1/recommendations/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
