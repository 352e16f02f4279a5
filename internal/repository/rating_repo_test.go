package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vendoreval/vendoreval-api/internal/models"
)

func seedVendorWithQuestion(t *testing.T, db *gorm.DB) (models.Vendor, models.Question, models.User) {
	t.Helper()

	user := models.User{Name: "Eva", Email: "eva@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	vendor := models.Vendor{Name: "Acme Logistics"}
	require.NoError(t, db.Create(&vendor).Error)

	segment := models.Segment{Name: "Delivery", Weight: 2}
	require.NoError(t, db.Create(&segment).Error)

	question := models.Question{Text: "Deliveries arrive on time?", SegmentID: segment.ID}
	require.NoError(t, db.Create(&question).Error)

	return vendor, question, user
}

func TestRatingRepositoryUpsertCreatesThenOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	vendor, question, user := seedVendorWithQuestion(t, db)

	now := time.Now().UTC()
	first := models.Rating{VendorID: vendor.ID, QuestionID: question.ID, Score: 6, Comment: "ok"}
	require.NoError(t, repo.Upsert(context.Background(), &first, user.ID, now))

	second := models.Rating{VendorID: vendor.ID, QuestionID: question.ID, Score: 9, Comment: "improved"}
	require.NoError(t, repo.Upsert(context.Background(), &second, user.ID, now.Add(time.Minute)))

	var stored []models.Rating
	require.NoError(t, db.Where("vendor_id = ?", vendor.ID).Find(&stored).Error)
	require.Len(t, stored, 1, "upsert must never duplicate a (vendor, question) row")
	require.Equal(t, 9, stored[0].Score)
	require.Equal(t, "improved", stored[0].Comment)
}

func TestRatingRepositoryUpsertReturnsStoredRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	vendor, question, user := seedVendorWithQuestion(t, db)

	now := time.Now().UTC()
	first := models.Rating{VendorID: vendor.ID, QuestionID: question.ID, Score: 6}
	require.NoError(t, repo.Upsert(context.Background(), &first, user.ID, now))
	require.NotEmpty(t, first.ID)
	require.False(t, first.UpdatedAt.IsZero())

	// overwrite with a fresh struct: the caller must get the existing row's
	// identity back, not the throwaway key generated for the insert attempt
	second := models.Rating{VendorID: vendor.ID, QuestionID: question.ID, Score: 9}
	require.NoError(t, repo.Upsert(context.Background(), &second, user.ID, now.Add(time.Minute)))
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 9, second.Score)
	require.False(t, second.UpdatedAt.IsZero())
}

func TestRatingRepositoryUpsertIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	vendor, question, user := seedVendorWithQuestion(t, db)

	now := time.Now().UTC()
	for i := 0; i < 2; i++ {
		rating := models.Rating{VendorID: vendor.ID, QuestionID: question.ID, Score: 7, Comment: "steady"}
		require.NoError(t, repo.Upsert(context.Background(), &rating, user.ID, now))
	}

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestRatingRepositoryUpsertStampsVendor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	vendor, question, user := seedVendorWithQuestion(t, db)

	evaluatedAt := time.Now().UTC().Truncate(time.Second)
	rating := models.Rating{VendorID: vendor.ID, QuestionID: question.ID, Score: 5}
	require.NoError(t, repo.Upsert(context.Background(), &rating, user.ID, evaluatedAt))

	var stored models.Vendor
	require.NoError(t, db.First(&stored, "id = ?", vendor.ID).Error)
	require.NotNil(t, stored.LastEvaluatedByID)
	require.Equal(t, user.ID, *stored.LastEvaluatedByID)
	require.NotNil(t, stored.LastEvaluatedAt)
	require.WithinDuration(t, evaluatedAt, *stored.LastEvaluatedAt, time.Second)
}

func TestRatingRepositorySaveAllPersistsSetAndStamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	vendor, question, user := seedVendorWithQuestion(t, db)

	other := models.Question{Text: "Invoices accurate?", SegmentID: question.SegmentID}
	require.NoError(t, db.Create(&other).Error)

	ratings := []models.Rating{
		{QuestionID: question.ID, Score: 8, Comment: "good"},
		{QuestionID: other.ID, Score: 6},
	}
	require.NoError(t, repo.SaveAll(context.Background(), vendor.ID, ratings, user.ID, time.Now().UTC()))

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Where("vendor_id = ?", vendor.ID).Count(&count).Error)
	require.EqualValues(t, 2, count)

	var stored models.Vendor
	require.NoError(t, db.First(&stored, "id = ?", vendor.ID).Error)
	require.NotNil(t, stored.LastEvaluatedByID)
}

func TestRatingRepositorySaveAllRollsBackOnMissingVendor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	_, question, user := seedVendorWithQuestion(t, db)

	ratings := []models.Rating{
		{QuestionID: question.ID, Score: 8},
	}
	err := repo.SaveAll(context.Background(), "missing-vendor", ratings, user.ID, time.Now().UTC())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	require.Zero(t, count, "a failed save-all must persist nothing")
}

func TestRatingRepositoryDeleteAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	vendor, question, user := seedVendorWithQuestion(t, db)

	rating := models.Rating{VendorID: vendor.ID, QuestionID: question.ID, Score: 4}
	require.NoError(t, repo.Upsert(context.Background(), &rating, user.ID, time.Now().UTC()))
	require.NoError(t, repo.DeleteAll(context.Background()))

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	require.Zero(t, count)
}
