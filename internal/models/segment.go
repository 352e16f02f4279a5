package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Segment is a named, weighted group of evaluation questions.
type Segment struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Weight    float64    `gorm:"not null;default:1" json:"weight"`
	Questions []Question `gorm:"foreignKey:SegmentID" json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (s *Segment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Question is a single evaluative prompt belonging to one segment.
type Question struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	SegmentID string    `gorm:"size:36;not null;index" json:"segment_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
