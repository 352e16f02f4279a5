package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/vendoreval/vendoreval-api/internal/dto"
	"github.com/vendoreval/vendoreval-api/internal/models"
	"github.com/vendoreval/vendoreval-api/internal/repository"
)

// RatingService exposes the rating upsert and listing use cases. Every write
// validates the score range and resolves vendor and question before touching
// the store, then invalidates the vendor's cached score summary.
type RatingService interface {
	ListByVendor(ctx context.Context, vendorID string) ([]dto.RatingResponse, error)
	ListAll(ctx context.Context) ([]dto.RatingResponse, error)
	Upsert(ctx context.Context, vendorID string, payload dto.RatingUpsertRequest, evaluatorID string) (dto.RatingResponse, error)
	SaveAll(ctx context.Context, payload dto.RatingBulkRequest, evaluatorID string) ([]dto.RatingResponse, error)
	DeleteAll(ctx context.Context) error
}

type ratingService struct {
	ratings   repository.RatingRepository
	vendors   repository.VendorRepository
	segments  repository.SegmentRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	cache     *redis.Client
	logger    zerolog.Logger
	now       func() time.Time
}

// NewRatingService builds the rating service.
func NewRatingService(ratings repository.RatingRepository, vendors repository.VendorRepository, segments repository.SegmentRepository, validate *validator.Validate, cache *redis.Client, logger zerolog.Logger) RatingService {
	return &ratingService{
		ratings:   ratings,
		vendors:   vendors,
		segments:  segments,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		cache:     cache,
		logger:    logger.With().Str("component", "rating_service").Logger(),
		now:       time.Now,
	}
}

func (s *ratingService) ListByVendor(ctx context.Context, vendorID string) ([]dto.RatingResponse, error) {
	if _, err := s.vendors.GetByID(ctx, vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	ratings, err := s.ratings.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	return dto.NewRatingResponseSlice(ratings), nil
}

func (s *ratingService) ListAll(ctx context.Context) ([]dto.RatingResponse, error) {
	ratings, err := s.ratings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewRatingResponseSlice(ratings), nil
}

func (s *ratingService) Upsert(ctx context.Context, vendorID string, payload dto.RatingUpsertRequest, evaluatorID string) (dto.RatingResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.RatingResponse{}, err
	}

	if _, err := s.vendors.GetByID(ctx, vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RatingResponse{}, ErrVendorNotFound
		}
		return dto.RatingResponse{}, err
	}

	if _, err := s.segments.GetQuestion(ctx, payload.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RatingResponse{}, ErrQuestionNotFound
		}
		return dto.RatingResponse{}, err
	}

	rating := models.Rating{
		VendorID:   vendorID,
		QuestionID: payload.QuestionID,
		Score:      payload.Score,
		Comment:    strings.TrimSpace(s.sanitizer.Sanitize(payload.Comment)),
	}

	if err := s.ratings.Upsert(ctx, &rating, evaluatorID, s.now().UTC()); err != nil {
		return dto.RatingResponse{}, err
	}

	s.invalidate(ctx, vendorID)
	s.logger.Info().Str("vendor_id", vendorID).Str("question_id", payload.QuestionID).Msg("rating saved")

	return dto.NewRatingResponse(rating), nil
}

func (s *ratingService) SaveAll(ctx context.Context, payload dto.RatingBulkRequest, evaluatorID string) ([]dto.RatingResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, err
	}

	if _, err := s.vendors.GetByID(ctx, payload.VendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	ratings := make([]models.Rating, 0, len(payload.Ratings))
	for _, item := range payload.Ratings {
		if _, err := s.segments.GetQuestion(ctx, item.QuestionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrQuestionNotFound
			}
			return nil, err
		}

		ratings = append(ratings, models.Rating{
			VendorID:   payload.VendorID,
			QuestionID: item.QuestionID,
			Score:      item.Score,
			Comment:    strings.TrimSpace(s.sanitizer.Sanitize(item.Comment)),
		})
	}

	if err := s.ratings.SaveAll(ctx, payload.VendorID, ratings, evaluatorID, s.now().UTC()); err != nil {
		return nil, err
	}

	s.invalidate(ctx, payload.VendorID)
	s.logger.Info().Str("vendor_id", payload.VendorID).Int("count", len(ratings)).Msg("ratings saved")

	return dto.NewRatingResponseSlice(ratings), nil
}

func (s *ratingService) DeleteAll(ctx context.Context) error {
	if err := s.ratings.DeleteAll(ctx); err != nil {
		return err
	}

	s.logger.Warn().Msg("all ratings deleted")
	return nil
}

func (s *ratingService) invalidate(ctx context.Context, vendorID string) {
	dropVendorSummary(ctx, s.cache, s.logger, vendorID)
}
