package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vendoreval/vendoreval-api/internal/models"
	"github.com/vendoreval/vendoreval-api/internal/repository"
	"github.com/vendoreval/vendoreval-api/internal/service"
	"github.com/vendoreval/vendoreval-api/internal/utils"
	"github.com/vendoreval/vendoreval-api/pkg/pdf"
)

const testUserID = "11111111-1111-1111-1111-111111111111"

// setupTestApp builds a fiber app with the real service stack over an
// in-memory database. Protected groups get a stub auth middleware that stamps
// a fixed user, so tests exercise handler behavior rather than token parsing.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Vendor{}, &models.Segment{}, &models.Question{}, &models.Rating{}))

	logger := zerolog.New(io.Discard)
	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	segmentRepo := repository.NewSegmentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	authService := service.NewAuthService(userRepo, validate, "test-secret", time.Hour, logger)
	vendorService := service.NewVendorService(vendorRepo, validate, nil, logger)
	catalogService := service.NewCatalogService(segmentRepo, validate, nil, logger)
	ratingService := service.NewRatingService(ratingRepo, vendorRepo, segmentRepo, validate, nil, logger)
	reportService := service.NewReportService(vendorRepo, segmentRepo, ratingRepo, pdf.NewRenderer(logger), nil, time.Minute, logger)

	stubAuth := func(c *fiber.Ctx) error {
		c.Locals("user_id", testUserID)
		c.Locals("user_name", "Test User")
		return c.Next()
	}

	app := fiber.New()
	api := app.Group("/api/v1")
	NewAuthHandler(authService, logger).Register(api.Group("/auth"))
	NewVendorHandler(vendorService, logger).Register(api.Group("/vendors", stubAuth))
	NewSegmentHandler(catalogService, logger).Register(api.Group("/segments", stubAuth))
	NewRatingHandler(ratingService, reportService, logger).Register(api.Group("/ratings", stubAuth))
	NewReportHandler(reportService, logger).Register(api.Group("/pdf", stubAuth))

	return app, db
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	return req
}

func decodeEnvelope(t *testing.T, res *http.Response) utils.APIResponse {
	t.Helper()

	var envelope utils.APIResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))
	return envelope
}

func decodeData(t *testing.T, envelope utils.APIResponse, out any) {
	t.Helper()

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Segment, models.Question) {
	t.Helper()

	segment := models.Segment{Name: "Delivery", Weight: 2}
	require.NoError(t, db.Create(&segment).Error)

	question := models.Question{Text: "Deliveries arrive on time?", SegmentID: segment.ID}
	require.NoError(t, db.Create(&question).Error)

	return segment, question
}

func seedVendor(t *testing.T, db *gorm.DB, name string) models.Vendor {
	t.Helper()

	vendor := models.Vendor{Name: name}
	require.NoError(t, db.Create(&vendor).Error)
	return vendor
}

func seedEvaluator(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	user := models.User{ID: testUserID, Name: "Test User", Email: "evaluator@example.com", Password: "irrelevant"}
	require.NoError(t, db.Create(&user).Error)
	return user
}
