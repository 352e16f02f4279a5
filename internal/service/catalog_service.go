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

// ErrSegmentNotFound indicates the requested segment does not exist.
var ErrSegmentNotFound = errors.New("segment not found")

// ErrQuestionNotFound indicates the requested question does not exist.
var ErrQuestionNotFound = errors.New("question not found")

// ErrSegmentNameRequired indicates a create/update would blank the segment name.
var ErrSegmentNameRequired = errors.New("segment name is required")

// CatalogService manages the segment and question catalog that feeds the
// scoring engine.
type CatalogService interface {
	List(ctx context.Context) ([]dto.SegmentResponse, error)
	Create(ctx context.Context, payload dto.SegmentCreateRequest) (dto.SegmentResponse, error)
	Update(ctx context.Context, payload dto.SegmentUpdateRequest) (dto.SegmentResponse, error)
	Delete(ctx context.Context, segmentID string) error
}

type catalogService struct {
	repo      repository.SegmentRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	cache     *redis.Client
	logger    zerolog.Logger
}

// NewCatalogService builds the catalog service. Catalog mutations change the
// scoring inputs for every vendor, so each one drops all cached summaries.
func NewCatalogService(repo repository.SegmentRepository, validate *validator.Validate, cache *redis.Client, logger zerolog.Logger) CatalogService {
	return &catalogService{
		repo:      repo,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		cache:     cache,
		logger:    logger.With().Str("component", "catalog_service").Logger(),
	}
}

func (s *catalogService) List(ctx context.Context) ([]dto.SegmentResponse, error) {
	segments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewSegmentResponseSlice(segments), nil
}

func (s *catalogService) Create(ctx context.Context, payload dto.SegmentCreateRequest) (dto.SegmentResponse, error) {
	payload.Name = strings.TrimSpace(s.sanitizer.Sanitize(payload.Name))
	if payload.Name == "" {
		return dto.SegmentResponse{}, ErrSegmentNameRequired
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.SegmentResponse{}, err
	}

	segment := models.Segment{
		Name:   payload.Name,
		Weight: payload.Weight,
	}
	if segment.Weight == 0 {
		segment.Weight = 1
	}

	if err := s.repo.Create(ctx, &segment); err != nil {
		return dto.SegmentResponse{}, err
	}

	dropAllSummaries(ctx, s.cache, s.logger)
	s.logger.Info().Str("segment_id", segment.ID).Msg("segment created")

	return dto.NewSegmentResponse(segment), nil
}

// Update applies field changes and/or a single question addition or removal
// in one call, matching the catalog edit surface. Renaming or reweighting
// never touches the segment's questions.
func (s *catalogService) Update(ctx context.Context, payload dto.SegmentUpdateRequest) (dto.SegmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SegmentResponse{}, err
	}

	segment, err := s.repo.GetByID(ctx, payload.SegmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SegmentResponse{}, ErrSegmentNotFound
		}
		return dto.SegmentResponse{}, err
	}

	if payload.Name != nil || payload.Weight != nil {
		if payload.Name != nil {
			name := strings.TrimSpace(s.sanitizer.Sanitize(*payload.Name))
			if name == "" {
				return dto.SegmentResponse{}, ErrSegmentNameRequired
			}
			segment.Name = name
		}
		if payload.Weight != nil {
			segment.Weight = *payload.Weight
		}
		if err := s.repo.Update(ctx, &segment); err != nil {
			return dto.SegmentResponse{}, err
		}
	}

	if text := strings.TrimSpace(s.sanitizer.Sanitize(payload.AddQuestion)); text != "" {
		question := models.Question{Text: text, SegmentID: segment.ID}
		if err := s.repo.CreateQuestion(ctx, &question); err != nil {
			return dto.SegmentResponse{}, err
		}
	}

	if payload.DeleteQuestionID != "" {
		question, err := s.repo.GetQuestion(ctx, payload.DeleteQuestionID)
		if err != nil || question.SegmentID != segment.ID {
			if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.SegmentResponse{}, ErrQuestionNotFound
			}
			return dto.SegmentResponse{}, err
		}
		if err := s.repo.DeleteQuestion(ctx, question.ID); err != nil {
			return dto.SegmentResponse{}, err
		}
	}

	updated, err := s.repo.GetByID(ctx, segment.ID)
	if err != nil {
		return dto.SegmentResponse{}, err
	}

	dropAllSummaries(ctx, s.cache, s.logger)
	s.logger.Info().Str("segment_id", segment.ID).Msg("segment updated")

	return dto.NewSegmentResponse(updated), nil
}

func (s *catalogService) Delete(ctx context.Context, segmentID string) error {
	if err := s.repo.Delete(ctx, segmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSegmentNotFound
		}
		return err
	}

	dropAllSummaries(ctx, s.cache, s.logger)
	s.logger.Info().Str("segment_id", segmentID).Msg("segment deleted")
	return nil
}
