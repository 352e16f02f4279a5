package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vendoreval/vendoreval-api/internal/config"
	"github.com/vendoreval/vendoreval-api/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler    *handler.AuthHandler
	VendorHandler  *handler.VendorHandler
	SegmentHandler *handler.SegmentHandler
	RatingHandler  *handler.RatingHandler
	ReportHandler  *handler.ReportHandler
	JWTMiddleware  fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.VendorHandler != nil {
		deps.VendorHandler.Register(api.Group("/vendors", jwtMiddleware))
	}

	if deps.SegmentHandler != nil {
		deps.SegmentHandler.Register(api.Group("/segments", jwtMiddleware))
	}

	if deps.RatingHandler != nil {
		deps.RatingHandler.Register(api.Group("/ratings", jwtMiddleware))
	}

	if deps.ReportHandler != nil {
		deps.ReportHandler.Register(api.Group("/pdf", jwtMiddleware))
	}
}
