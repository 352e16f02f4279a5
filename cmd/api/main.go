package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/vendoreval/vendoreval-api/internal/config"
	"github.com/vendoreval/vendoreval-api/internal/database"
	"github.com/vendoreval/vendoreval-api/internal/handler"
	"github.com/vendoreval/vendoreval-api/internal/middleware"
	"github.com/vendoreval/vendoreval-api/internal/models"
	"github.com/vendoreval/vendoreval-api/internal/repository"
	"github.com/vendoreval/vendoreval-api/internal/router"
	"github.com/vendoreval/vendoreval-api/internal/service"
	"github.com/vendoreval/vendoreval-api/pkg/pdf"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Vendor{}, &models.Segment{}, &models.Question{}, &models.Rating{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	segmentRepo := repository.NewSegmentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	renderer := pdf.NewRenderer(logger)

	authService := service.NewAuthService(userRepo, validate, cfg.JWTSecret, cfg.TokenTTL, logger)
	vendorService := service.NewVendorService(vendorRepo, validate, redisClient, logger)
	catalogService := service.NewCatalogService(segmentRepo, validate, redisClient, logger)
	ratingService := service.NewRatingService(ratingRepo, vendorRepo, segmentRepo, validate, redisClient, logger)
	reportService := service.NewReportService(vendorRepo, segmentRepo, ratingRepo, renderer, redisClient, cfg.ReportCacheTTL, logger)

	authHandler := handler.NewAuthHandler(authService, logger)
	vendorHandler := handler.NewVendorHandler(vendorService, logger)
	segmentHandler := handler.NewSegmentHandler(catalogService, logger)
	ratingHandler := handler.NewRatingHandler(ratingService, reportService, logger)
	reportHandler := handler.NewReportHandler(reportService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:    authHandler,
		VendorHandler:  vendorHandler,
		SegmentHandler: segmentHandler,
		RatingHandler:  ratingHandler,
		ReportHandler:  reportHandler,
		JWTMiddleware:  middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
