package dto

import (
	"time"

	"github.com/vendoreval/vendoreval-api/internal/models"
)

// VendorCreateRequest describes the payload for registering a vendor.
type VendorCreateRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Company string `json:"company" validate:"omitempty,max=255"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// VendorUpdateRequest describes a partial vendor update.
type VendorUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Company *string `json:"company" validate:"omitempty,max=255"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// VendorDeleteRequest carries the vendor identifier for body-based deletion.
type VendorDeleteRequest struct {
	VendorID string `json:"vendorId" validate:"required"`
}

// VendorResponse is the serialized vendor representation.
type VendorResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Company         string     `json:"company"`
	Email           string     `json:"email"`
	LastEvaluatedBy string     `json:"last_evaluated_by,omitempty"`
	LastEvaluatedAt *time.Time `json:"last_evaluated_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewVendorResponse converts a model into a DTO.
func NewVendorResponse(model models.Vendor) VendorResponse {
	response := VendorResponse{
		ID:              model.ID,
		Name:            model.Name,
		Company:         model.Company,
		Email:           model.Email,
		LastEvaluatedAt: model.LastEvaluatedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}

	if model.LastEvaluatedBy != nil {
		response.LastEvaluatedBy = model.LastEvaluatedBy.Name
	}

	return response
}

// NewVendorResponseSlice converts a slice of models into DTOs.
func NewVendorResponseSlice(vendors []models.Vendor) []VendorResponse {
	responses := make([]VendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		responses = append(responses, NewVendorResponse(vendor))
	}

	return responses
}
