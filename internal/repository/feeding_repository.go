package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/domain"
	"gorm.io/gorm"
)

// FeedingRepository handles feeding data access operations
type FeedingRepository struct {
	db *gorm.DB
}

// NewFeedingRepository creates a new feeding repository instance
func NewFeedingRepository(db *gorm.DB) *FeedingRepository {
	return &FeedingRepository{db: db}
}

// Create creates a new feeding in the database
func (r *FeedingRepository) Create(ctx context.Context, feeding *domain.Feeding) error {
	return r.db.WithContext(ctx).Create(feeding).Error
}

// ListByFinch returns the finch's feedings, newest date first
func (r *FeedingRepository) ListByFinch(ctx context.Context, finchID uuid.UUID) ([]domain.Feeding, error) {
	var feedings []domain.Feeding
	err := r.db.WithContext(ctx).
		Where("finch_id = ?", finchID).
		Order("date DESC, created_at DESC").
		Find(&feedings).Error
	if err != nil {
		return nil, err
	}
	return feedings, nil
}

// CountByFinch returns the number of feedings recorded for the finch
func (r *FeedingRepository) CountByFinch(ctx context.Context, finchID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Feeding{}).
		Where("finch_id = ?", finchID).
		Count(&count).Error
	return count, err
}

// CountByFinchOnDate returns the number of the finch's feedings dated on day
func (r *FeedingRepository) CountByFinchOnDate(ctx context.Context, finchID uuid.UUID, day time.Time) (int64, error) {
	start, end := dayRange(day)

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Feeding{}).
		Where("finch_id = ? AND date >= ? AND date < ?", finchID, start, end).
		Count(&count).Error
	return count, err
}
