package dto

import (
	"time"

	"github.com/vendoreval/vendoreval-api/internal/models"
)

// SegmentCreateRequest describes the payload for creating a segment.
type SegmentCreateRequest struct {
	Name   string  `json:"name" validate:"required,min=1"`
	Weight float64 `json:"weight" validate:"omitempty,gt=0,lte=100"`
}

// SegmentUpdateRequest updates segment fields and/or adds or removes a single
// question, mirroring the single-call catalog edit the UI performs.
type SegmentUpdateRequest struct {
	SegmentID        string   `json:"segmentId" validate:"required"`
	Name             *string  `json:"name" validate:"omitempty,min=1"`
	Weight           *float64 `json:"weight" validate:"omitempty,gt=0,lte=100"`
	AddQuestion      string   `json:"addQuestion"`
	DeleteQuestionID string   `json:"deleteQuestionId"`
}

// SegmentDeleteRequest carries the segment identifier for deletion.
type SegmentDeleteRequest struct {
	SegmentID string `json:"segmentId" validate:"required"`
}

// QuestionResponse is the serialized question representation.
type QuestionResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	SegmentID string    `json:"segment_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SegmentResponse is the serialized segment representation with its questions.
type SegmentResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Weight    float64            `json:"weight"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewQuestionResponse converts a model into a DTO.
func NewQuestionResponse(model models.Question) QuestionResponse {
	return QuestionResponse{
		ID:        model.ID,
		Text:      model.Text,
		SegmentID: model.SegmentID,
		CreatedAt: model.CreatedAt,
	}
}

// NewSegmentResponse converts a model into a DTO.
func NewSegmentResponse(model models.Segment) SegmentResponse {
	questions := make([]QuestionResponse, 0, len(model.Questions))
	for _, question := range model.Questions {
		questions = append(questions, NewQuestionResponse(question))
	}

	return SegmentResponse{
		ID:        model.ID,
		Name:      model.Name,
		Weight:    model.Weight,
		Questions: questions,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewSegmentResponseSlice converts a slice of models into DTOs.
func NewSegmentResponseSlice(segments []models.Segment) []SegmentResponse {
	responses := make([]SegmentResponse, 0, len(segments))
	for _, segment := range segments {
		responses = append(responses, NewSegmentResponse(segment))
	}

	return responses
}
