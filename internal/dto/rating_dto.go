package dto

import (
	"time"

	"github.com/vendoreval/vendoreval-api/internal/models"
)

// RatingUpsertRequest describes a single autosaved rating.
type RatingUpsertRequest struct {
	QuestionID string `json:"questionId" validate:"required"`
	Score      int    `json:"score" validate:"gte=0,lte=10"`
	Comment    string `json:"comment"`
}

// RatingBulkItem is one entry of a save-all request.
type RatingBulkItem struct {
	QuestionID string `json:"questionId" validate:"required"`
	Score      int    `json:"score" validate:"gte=0,lte=10"`
	Comment    string `json:"comment"`
}

// RatingBulkRequest describes the save-all payload.
type RatingBulkRequest struct {
	VendorID string           `json:"vendorId" validate:"required"`
	Ratings  []RatingBulkItem `json:"ratings" validate:"required,dive"`
}

// RatingResponse is the serialized rating representation.
type RatingResponse struct {
	ID         string    `json:"id"`
	VendorID   string    `json:"vendor_id"`
	QuestionID string    `json:"question_id"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewRatingResponse converts a model into a DTO.
func NewRatingResponse(model models.Rating) RatingResponse {
	return RatingResponse{
		ID:         model.ID,
		VendorID:   model.VendorID,
		QuestionID: model.QuestionID,
		Score:      model.Score,
		Comment:    model.Comment,
		UpdatedAt:  model.UpdatedAt,
	}
}

// NewRatingResponseSlice converts a slice of models into DTOs.
func NewRatingResponseSlice(ratings []models.Rating) []RatingResponse {
	responses := make([]RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		responses = append(responses, NewRatingResponse(rating))
	}

	return responses
}
