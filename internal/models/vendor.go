package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor is an evaluated supplier. LastEvaluatedBy/LastEvaluatedAt are a
// last-write-wins stamp maintained by the rating store, not an audit trail.
type Vendor struct {
	ID                string     `gorm:"primaryKey;size:36" json:"id"`
	Name              string     `gorm:"size:255;not null" json:"name"`
	Company           string     `gorm:"size:255" json:"company"`
	Email             string     `gorm:"size:255" json:"email"`
	LastEvaluatedByID *string    `gorm:"size:36" json:"last_evaluated_by_id"`
	LastEvaluatedBy   *User      `gorm:"foreignKey:LastEvaluatedByID" json:"last_evaluated_by,omitempty"`
	LastEvaluatedAt   *time.Time `json:"last_evaluated_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
