package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/smart-ats/internal/config"
	"alfredoptarigan/smart-ats/internal/handlers"
	"alfredoptarigan/smart-ats/internal/repositories"
	"alfredoptarigan/smart-ats/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// History is opt-in
	var (
		analysisRepo   repositories.AnalysisRepository
		historyHandler *handlers.HistoryHandler
	)
	if cfg.History.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		analysisRepo = repositories.NewAnalysisRepository(db)
		historyHandler = handlers.NewHistoryHandler(analysisRepo)
		log.Println("✅ Analysis history enabled")
	}

	// Initialize services
	normalizer, err := services.NewNormalizer()
	if err != nil {
		log.Fatalf("❌ Failed to initialize normalizer: %v", err)
	}

	analyzerService := services.NewAnalyzerService(
		services.NewDocumentExtractor(),
		normalizer,
		analysisRepo,
		cfg.Matching.MaxMissingKeywords,
	)
	log.Println("✅ Services initialized successfully")

	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, cfg.Upload.MaxFileSize)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Smart ATS API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    handlers.BodyLimit(cfg.Upload.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.RegisterRoutes(app, analyzeHandler, historyHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := cfg.Address()
		log.Printf("🚀 Server starting on %s\n", addr)
		return app.Listen(addr)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("🛑 Shutting down server...")
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("❌ Server stopped with error: %v", err)
	}
	log.Println("✅ Server stopped")
}
