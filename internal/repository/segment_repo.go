package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vendoreval/vendoreval-api/internal/models"
)

// SegmentRepository defines persistence operations for the evaluation catalog.
type SegmentRepository interface {
	List(ctx context.Context) ([]models.Segment, error)
	GetByID(ctx context.Context, id string) (models.Segment, error)
	Create(ctx context.Context, segment *models.Segment) error
	Update(ctx context.Context, segment *models.Segment) error
	Delete(ctx context.Context, id string) error
	CreateQuestion(ctx context.Context, question *models.Question) error
	GetQuestion(ctx context.Context, id string) (models.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type segmentRepository struct {
	db *gorm.DB
}

// NewSegmentRepository instantiates a GORM-backed repository.
func NewSegmentRepository(db *gorm.DB) SegmentRepository {
	return &segmentRepository{db: db}
}

// List returns segments ordered by name ascending with questions in catalog
// (creation) order, the ordering contract the report depends on.
func (r *segmentRepository) List(ctx context.Context) ([]models.Segment, error) {
	var segments []models.Segment
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("name ASC").
		Find(&segments).Error
	if err != nil {
		return nil, err
	}

	return segments, nil
}

func (r *segmentRepository) GetByID(ctx context.Context, id string) (models.Segment, error) {
	var segment models.Segment
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&segment, "id = ?", id).Error
	if err != nil {
		return models.Segment{}, err
	}

	return segment, nil
}

func (r *segmentRepository) Create(ctx context.Context, segment *models.Segment) error {
	return r.db.WithContext(ctx).Create(segment).Error
}

func (r *segmentRepository) Update(ctx context.Context, segment *models.Segment) error {
	return r.db.WithContext(ctx).Omit("Questions").Save(segment).Error
}

// Delete removes a segment with an explicit cascade: ratings of its questions
// first, then the questions, then the segment itself, all in one transaction.
func (r *segmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var questionIDs []string
		if err := tx.Model(&models.Question{}).Where("segment_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}

		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&models.Rating{}).Error; err != nil {
				return err
			}
			if err := tx.Where("segment_id = ?", id).Delete(&models.Question{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Segment{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

func (r *segmentRepository) CreateQuestion(ctx context.Context, question *models.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *segmentRepository) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	var question models.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		return models.Question{}, err
	}

	return question, nil
}

// DeleteQuestion removes a question together with its ratings.
func (r *segmentRepository) DeleteQuestion(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Question{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}
