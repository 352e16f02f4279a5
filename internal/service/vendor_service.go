package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/vendoreval/vendoreval-api/internal/dto"
	"github.com/vendoreval/vendoreval-api/internal/models"
	"github.com/vendoreval/vendoreval-api/internal/repository"
)

// ErrVendorNotFound indicates the requested vendor does not exist.
var ErrVendorNotFound = errors.New("vendor not found")

// ErrVendorNameRequired indicates an update would blank the vendor name.
var ErrVendorNameRequired = errors.New("vendor name is required")

// VendorService exposes vendor management use cases.
type VendorService interface {
	List(ctx context.Context) ([]dto.VendorResponse, error)
	Get(ctx context.Context, id string) (dto.VendorResponse, error)
	Create(ctx context.Context, payload dto.VendorCreateRequest) (dto.VendorResponse, error)
	Update(ctx context.Context, id string, payload dto.VendorUpdateRequest) (dto.VendorResponse, error)
	Delete(ctx context.Context, id string) error
}

type vendorService struct {
	repo      repository.VendorRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	cache     *redis.Client
	logger    zerolog.Logger
}

// NewVendorService builds a new vendor service.
func NewVendorService(repo repository.VendorRepository, validate *validator.Validate, cache *redis.Client, logger zerolog.Logger) VendorService {
	return &vendorService{
		repo:      repo,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		cache:     cache,
		logger:    logger.With().Str("component", "vendor_service").Logger(),
	}
}

func (s *vendorService) List(ctx context.Context) ([]dto.VendorResponse, error) {
	vendors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewVendorResponseSlice(vendors), nil
}

func (s *vendorService) Get(ctx context.Context, id string) (dto.VendorResponse, error) {
	vendor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.VendorResponse{}, ErrVendorNotFound
		}
		return dto.VendorResponse{}, err
	}

	return dto.NewVendorResponse(vendor), nil
}

func (s *vendorService) Create(ctx context.Context, payload dto.VendorCreateRequest) (dto.VendorResponse, error) {
	payload.Name = strings.TrimSpace(s.sanitizer.Sanitize(payload.Name))
	payload.Company = strings.TrimSpace(s.sanitizer.Sanitize(payload.Company))
	payload.Email = strings.TrimSpace(payload.Email)

	if err := s.validator.Struct(payload); err != nil {
		return dto.VendorResponse{}, err
	}

	vendor := models.Vendor{
		Name:    payload.Name,
		Company: payload.Company,
		Email:   payload.Email,
	}

	if err := s.repo.Create(ctx, &vendor); err != nil {
		return dto.VendorResponse{}, err
	}

	s.logger.Info().Str("vendor_id", vendor.ID).Msg("vendor created")

	return dto.NewVendorResponse(vendor), nil
}

func (s *vendorService) Update(ctx context.Context, id string, payload dto.VendorUpdateRequest) (dto.VendorResponse, error) {
	if payload.Email != nil {
		trimmed := strings.TrimSpace(*payload.Email)
		payload.Email = &trimmed
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.VendorResponse{}, err
	}

	vendor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.VendorResponse{}, ErrVendorNotFound
		}
		return dto.VendorResponse{}, err
	}

	if payload.Name != nil {
		name := strings.TrimSpace(s.sanitizer.Sanitize(*payload.Name))
		if name == "" {
			return dto.VendorResponse{}, ErrVendorNameRequired
		}
		vendor.Name = name
	}

	if payload.Company != nil {
		vendor.Company = strings.TrimSpace(s.sanitizer.Sanitize(*payload.Company))
	}

	if payload.Email != nil {
		vendor.Email = *payload.Email
	}

	if err := s.repo.Update(ctx, &vendor); err != nil {
		return dto.VendorResponse{}, err
	}

	s.logger.Info().Str("vendor_id", vendor.ID).Msg("vendor updated")

	return dto.NewVendorResponse(vendor), nil
}

func (s *vendorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVendorNotFound
		}
		return err
	}

	dropVendorSummary(ctx, s.cache, s.logger, id)
	s.logger.Info().Str("vendor_id", id).Msg("vendor deleted")
	return nil
}
