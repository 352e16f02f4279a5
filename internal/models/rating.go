package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating holds one score and comment for a (vendor, question) pair. Ratings
// are global: the composite unique index guarantees at most one row per pair,
// and the store upserts against it.
type Rating struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	VendorID   string    `gorm:"size:36;not null;uniqueIndex:idx_vendor_question" json:"vendor_id"`
	QuestionID string    `gorm:"size:36;not null;uniqueIndex:idx_vendor_question" json:"question_id"`
	Score      int       `gorm:"not null;default:0" json:"score"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
