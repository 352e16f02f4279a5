package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/vendoreval/vendoreval-api/internal/dto"
	"github.com/vendoreval/vendoreval-api/internal/models"
	"github.com/vendoreval/vendoreval-api/internal/repository"
	"github.com/vendoreval/vendoreval-api/internal/scoring"
)

const evaluatedAtLayout = "2006-01-02 15:04"

// ReportRenderer turns an assembled report document into a binary document.
type ReportRenderer interface {
	Render(document dto.ReportDocument) ([]byte, error)
}

// ReportService assembles vendor evaluation reports and the live score
// preview. Both paths run the same scoring engine.
type ReportService interface {
	Score(ctx context.Context, vendorID string) (dto.ScoreSummaryResponse, error)
	Assemble(ctx context.Context, vendorID string) (dto.ReportDocument, error)
	RenderPDF(ctx context.Context, vendorID string) ([]byte, string, error)
}

type reportService struct {
	vendors  repository.VendorRepository
	segments repository.SegmentRepository
	ratings  repository.RatingRepository
	renderer ReportRenderer
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewReportService builds the report service.
func NewReportService(vendors repository.VendorRepository, segments repository.SegmentRepository, ratings repository.RatingRepository, renderer ReportRenderer, cache *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) ReportService {
	return &reportService{
		vendors:  vendors,
		segments: segments,
		ratings:  ratings,
		renderer: renderer,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("component", "report_service").Logger(),
	}
}

// Score returns the weighted score summary for a vendor, served from the
// redis cache when a rating write has not invalidated it.
func (s *reportService) Score(ctx context.Context, vendorID string) (dto.ScoreSummaryResponse, error) {
	cacheKey := reportCacheKey(vendorID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.ScoreSummaryResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Str("vendor_id", vendorID).Msg("score cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read score cache")
		}
	}

	if _, err := s.vendors.GetByID(ctx, vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ScoreSummaryResponse{}, ErrVendorNotFound
		}
		return dto.ScoreSummaryResponse{}, err
	}

	segments, ratings, err := s.loadCatalogAndRatings(ctx, vendorID)
	if err != nil {
		return dto.ScoreSummaryResponse{}, err
	}

	response := dto.ScoreSummaryResponse{
		VendorID: vendorID,
		Summary:  scoring.Evaluate(scoringSegments(segments), scoreMap(ratings)),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store score cache")
			}
		}
	}

	return response, nil
}

// Assemble builds the flat report document: every catalog question appears
// exactly once in document order, with score 0 and comment "-" when unrated.
func (s *reportService) Assemble(ctx context.Context, vendorID string) (dto.ReportDocument, error) {
	vendor, err := s.vendors.GetByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ReportDocument{}, ErrVendorNotFound
		}
		return dto.ReportDocument{}, err
	}

	segments, ratings, err := s.loadCatalogAndRatings(ctx, vendorID)
	if err != nil {
		return dto.ReportDocument{}, err
	}

	summary := scoring.Evaluate(scoringSegments(segments), scoreMap(ratings))

	byQuestion := make(map[string]models.Rating, len(ratings))
	for _, rating := range ratings {
		byQuestion[rating.QuestionID] = rating
	}

	document := dto.ReportDocument{
		VendorName:  vendor.Name,
		Company:     orDefault(vendor.Company, "N/A"),
		Email:       orDefault(vendor.Email, "N/A"),
		Evaluator:   "Unknown",
		EvaluatedAt: "N/A",
		FinalScore:  summary.FinalScore,
		Label:       summary.Label,
	}

	if vendor.LastEvaluatedBy != nil {
		document.Evaluator = vendor.LastEvaluatedBy.Name
	}
	if vendor.LastEvaluatedAt != nil {
		document.EvaluatedAt = vendor.LastEvaluatedAt.UTC().Format(evaluatedAtLayout)
	}

	document.Segments = make([]dto.ReportSegment, 0, len(segments))
	for i, segment := range segments {
		reportSegment := dto.ReportSegment{
			ID:        segment.ID,
			Name:      segment.Name,
			Weight:    segment.Weight,
			Average:   summary.Segments[i].Average,
			Weighted:  summary.Segments[i].Weighted,
			Questions: make([]dto.ReportQuestion, 0, len(segment.Questions)),
		}

		for _, question := range segment.Questions {
			resolved := dto.ReportQuestion{
				ID:      question.ID,
				Text:    question.Text,
				Score:   0,
				Comment: "-",
			}
			if rating, ok := byQuestion[question.ID]; ok {
				resolved.Score = rating.Score
				if strings.TrimSpace(rating.Comment) != "" {
					resolved.Comment = rating.Comment
				}
			}

			reportSegment.Questions = append(reportSegment.Questions, resolved)
			document.QuestionCount++
		}

		document.Segments = append(document.Segments, reportSegment)
	}

	return document, nil
}

// RenderPDF assembles the report and renders it fully before returning, so a
// render failure never streams a partial document. The second return value is
// the suggested attachment filename.
func (s *reportService) RenderPDF(ctx context.Context, vendorID string) ([]byte, string, error) {
	document, err := s.Assemble(ctx, vendorID)
	if err != nil {
		return nil, "", err
	}

	payload, err := s.renderer.Render(document)
	if err != nil {
		s.logger.Error().Err(err).Str("vendor_id", vendorID).Msg("pdf render failed")
		return nil, "", err
	}

	filename := fmt.Sprintf("Report_%s.pdf", sanitizeFilename(document.VendorName))

	return payload, filename, nil
}

func (s *reportService) loadCatalogAndRatings(ctx context.Context, vendorID string) ([]models.Segment, []models.Rating, error) {
	segments, err := s.segments.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	ratings, err := s.ratings.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, nil, err
	}

	return segments, ratings, nil
}

func scoringSegments(segments []models.Segment) []scoring.Segment {
	converted := make([]scoring.Segment, 0, len(segments))
	for _, segment := range segments {
		questions := make([]scoring.Question, 0, len(segment.Questions))
		for _, question := range segment.Questions {
			questions = append(questions, scoring.Question{ID: question.ID, Text: question.Text})
		}

		converted = append(converted, scoring.Segment{
			ID:        segment.ID,
			Name:      segment.Name,
			Weight:    segment.Weight,
			Questions: questions,
		})
	}

	return converted
}

func scoreMap(ratings []models.Rating) map[string]float64 {
	scores := make(map[string]float64, len(ratings))
	for _, rating := range ratings {
		scores[rating.QuestionID] = float64(rating.Score)
	}

	return scores
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func sanitizeFilename(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, strings.TrimSpace(name))

	if cleaned == "" {
		return "Vendor"
	}

	return cleaned
}
