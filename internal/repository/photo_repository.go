package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/domain"
	"gorm.io/gorm"
)

// PhotoRepository handles photo record data access operations
type PhotoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new photo repository instance
func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create creates a new photo record in the database
func (r *PhotoRepository) Create(ctx context.Context, photo *domain.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

// ListByFinch returns the finch's photos in upload order
func (r *PhotoRepository) ListByFinch(ctx context.Context, finchID uuid.UUID) ([]domain.Photo, error) {
	var photos []domain.Photo
	err := r.db.WithContext(ctx).
		Where("finch_id = ?", finchID).
		Order("created_at ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// CountByFinch returns the number of photos recorded for the finch
func (r *PhotoRepository) CountByFinch(ctx context.Context, finchID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Photo{}).
		Where("finch_id = ?", finchID).
		Count(&count).Error
	return count, err
}
