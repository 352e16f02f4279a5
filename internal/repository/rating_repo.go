package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vendoreval/vendoreval-api/internal/models"
)

// RatingRepository defines the rating store contract. Writes are atomic
// upserts against the (vendor_id, question_id) unique index; the evaluator
// stamp on the vendor is committed in the same transaction as the rating rows
// it accompanies.
type RatingRepository interface {
	ListAll(ctx context.Context) ([]models.Rating, error)
	ListByVendor(ctx context.Context, vendorID string) ([]models.Rating, error)
	Upsert(ctx context.Context, rating *models.Rating, evaluatorID string, evaluatedAt time.Time) error
	SaveAll(ctx context.Context, vendorID string, ratings []models.Rating, evaluatorID string, evaluatedAt time.Time) error
	DeleteAll(ctx context.Context) error
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository instantiates a GORM-backed repository.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) ListAll(ctx context.Context) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).Find(&ratings).Error; err != nil {
		return nil, err
	}

	return ratings, nil
}

func (r *ratingRepository) ListByVendor(ctx context.Context, vendorID string) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).Where("vendor_id = ?", vendorID).Find(&ratings).Error; err != nil {
		return nil, err
	}

	return ratings, nil
}

// Upsert writes one rating and the vendor evaluator stamp in a single
// transaction. The write uses the store's native conflict clause, never a
// read-modify-write, so concurrent autosaves for the same question resolve to
// last-write-wins without lost updates.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating, evaluatorID string, evaluatedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertRating(tx, rating); err != nil {
			return err
		}

		return stampVendor(tx, rating.VendorID, evaluatorID, evaluatedAt)
	})
}

// SaveAll persists the full rating set plus the evaluator stamp atomically.
// Any failing row rolls back every other row and the stamp.
func (r *ratingRepository) SaveAll(ctx context.Context, vendorID string, ratings []models.Rating, evaluatorID string, evaluatedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range ratings {
			ratings[i].VendorID = vendorID
			if err := upsertRating(tx, &ratings[i]); err != nil {
				return err
			}
		}

		return stampVendor(tx, vendorID, evaluatorID, evaluatedAt)
	})
}

func (r *ratingRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Rating{}).Error
}

// upsertRating writes the conflict-clause upsert, then reloads the row so the
// caller sees the stored identity. On an overwrite the conflict path keeps the
// existing primary key, not the one BeforeCreate assigned to the new struct.
func upsertRating(tx *gorm.DB, rating *models.Rating) error {
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vendor_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "comment", "updated_at"}),
	}).Create(rating).Error; err != nil {
		return err
	}

	// reload into a fresh struct: First would treat the primary key already
	// set on rating as a query condition
	var stored models.Rating
	if err := tx.
		Where("vendor_id = ? AND question_id = ?", rating.VendorID, rating.QuestionID).
		First(&stored).Error; err != nil {
		return err
	}

	*rating = stored
	return nil
}

func stampVendor(tx *gorm.DB, vendorID, evaluatorID string, evaluatedAt time.Time) error {
	result := tx.Model(&models.Vendor{}).
		Where("id = ?", vendorID).
		Updates(map[string]interface{}{
			"last_evaluated_by_id": evaluatorID,
			"last_evaluated_at":    evaluatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
