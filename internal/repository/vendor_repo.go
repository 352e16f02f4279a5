package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vendoreval/vendoreval-api/internal/models"
)

// VendorRepository defines persistence operations for vendors.
type VendorRepository interface {
	List(ctx context.Context) ([]models.Vendor, error)
	GetByID(ctx context.Context, id string) (models.Vendor, error)
	Create(ctx context.Context, vendor *models.Vendor) error
	Update(ctx context.Context, vendor *models.Vendor) error
	Delete(ctx context.Context, id string) error
}

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository instantiates a GORM-backed repository.
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) List(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.WithContext(ctx).Preload("LastEvaluatedBy").Order("created_at DESC").Find(&vendors).Error; err != nil {
		return nil, err
	}

	return vendors, nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).Preload("LastEvaluatedBy").First(&vendor, "id = ?", id).Error; err != nil {
		return models.Vendor{}, err
	}

	return vendor, nil
}

func (r *vendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

// Delete removes the vendor and cascades its ratings in one transaction so no
// orphaned rating rows survive.
func (r *vendorRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Vendor{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}
