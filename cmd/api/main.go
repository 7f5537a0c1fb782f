package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"hirehub/hirehub-api/internal/config"
	"hirehub/hirehub-api/internal/handlers"
	"hirehub/hirehub-api/internal/llm"
	"hirehub/hirehub-api/internal/logger"
	"hirehub/hirehub-api/internal/repositories"
	"hirehub/hirehub-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Server.Env != "development", cfg.Server.Debug)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		zapLogger.Fatal("failed to initialize database", zap.Error(err))
	}
	zapLogger.Info("database connected")

	// Initialize repositories
	jobPostRepo := repositories.NewJobPostRepository(db)
	appRepo := repositories.NewJobApplicationRepository(db)

	// Initialize model client
	llmClient, err := newLLMClient(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to initialize model client", zap.Error(err))
	}
	zapLogger.Info("model client initialized", zap.String("provider", cfg.LLM.Provider))

	// Initialize services
	extractor := services.NewResumeExtractor(cfg.Storage.TempDir, zapLogger)
	analyzer := services.NewCandidateAnalyzer(jobPostRepo, extractor, llmClient, zapLogger)
	batch := services.NewBatchAnalyzer(jobPostRepo, appRepo, analyzer, cfg.Analyzer.Concurrency, zapLogger)
	zapLogger.Info("services initialized")

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analyzer, batch)
	applicationHandler := handlers.NewApplicationHandler(jobPostRepo, appRepo)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "HireHub API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
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
	api.Post("/applications/analyze", analysisHandler.HandleAnalyzeCandidate)
	api.Post("/applications/analyze-all", analysisHandler.HandleAnalyzeAll)
	api.Get("/applications/job-post/:jobPostId", applicationHandler.HandleListByJobPost)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "HireHub API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/applications/analyze",
				"POST /api/v1/applications/analyze-all",
				"GET /api/v1/applications/job-post/:jobPostId",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zapLogger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zapLogger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zapLogger.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLLMClient(cfg *config.Config, zapLogger *zap.Logger) (llm.Client, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return llm.NewGeminiClient(context.Background(), cfg.LLM.GeminiAPIKey, cfg.LLM.GeminiModel, zapLogger)
	default:
		return llm.NewOllamaClient(cfg.LLM.OllamaURL, cfg.LLM.OllamaModel, zapLogger), nil
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
