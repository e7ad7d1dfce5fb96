package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FinchRepository handles finch data access operations
type FinchRepository struct {
	db *gorm.DB
}

// NewFinchRepository creates a new finch repository instance
func NewFinchRepository(db *gorm.DB) *FinchRepository {
	return &FinchRepository{db: db}
}

// Create creates a new finch in the database
func (r *FinchRepository) Create(ctx context.Context, finch *domain.Finch) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(finch).Error
}

// GetByID retrieves a finch by its ID
func (r *FinchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Finch, error) {
	var finch domain.Finch
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&finch).Error
	if err != nil {
		return nil, err
	}
	return &finch, nil
}

// GetWithDetails retrieves a finch with its toys, feedings (newest first) and photos
func (r *FinchRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*domain.Finch, error) {
	var finch domain.Finch
	err := r.db.WithContext(ctx).
		Preload("Toys", func(db *gorm.DB) *gorm.DB {
			return db.Order("toys.name ASC")
		}).
		Preload("Feedings", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC, created_at DESC")
		}).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&finch).Error
	if err != nil {
		return nil, err
	}
	return &finch, nil
}

// Exists reports whether a finch with the given ID exists
func (r *FinchRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Finch{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List returns every finch matching the filter
func (r *FinchRepository) List(ctx context.Context, filter ListFilter) ([]domain.Finch, error) {
	var finches []domain.Finch
	query := applyListFilter(r.db.WithContext(ctx).Model(&domain.Finch{}), filter)
	if err := query.Find(&finches).Error; err != nil {
		return nil, err
	}
	return finches, nil
}

// Update persists the mutable fields of a finch
func (r *FinchRepository) Update(ctx context.Context, finch *domain.Finch) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(finch).Error
}

// Delete removes a finch with its feedings, photos and toy associations.
// Toys themselves are left untouched.
func (r *FinchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("finch_id = ?", id).Delete(&domain.Feeding{}).Error; err != nil {
			return err
		}
		if err := tx.Where("finch_id = ?", id).Delete(&domain.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("finch_id = ?", id).Delete(&domain.FinchToy{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&domain.Finch{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// AddToy adds the toy to the finch's toy set. Adding a toy already in
// the set is a no-op.
func (r *FinchRepository) AddToy(ctx context.Context, finchID, toyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.FinchToy{FinchID: finchID, ToyID: toyID}).Error
}

// RemoveToy removes the toy from the finch's toy set. Removing a toy not
// in the set is a no-op.
func (r *FinchRepository) RemoveToy(ctx context.Context, finchID, toyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("finch_id = ? AND toy_id = ?", finchID, toyID).
		Delete(&domain.FinchToy{}).Error
}

// HasToy reports whether the toy is in the finch's toy set
func (r *FinchRepository) HasToy(ctx context.Context, finchID, toyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FinchToy{}).
		Where("finch_id = ? AND toy_id = ?", finchID, toyID).
		Count(&count).Error
	return count > 0, err
}

// ListUnderfedOn returns finches with fewer than meals feedings dated on day
func (r *FinchRepository) ListUnderfedOn(ctx context.Context, day time.Time, meals int) ([]domain.Finch, error) {
	start, end := dayRange(day)

	var finches []domain.Finch
	err := r.db.WithContext(ctx).
		Model(&domain.Finch{}).
		Select("finches.*").
		Joins("LEFT JOIN feedings ON feedings.finch_id = finches.id AND feedings.date >= ? AND feedings.date < ?", start, end).
		Group("finches.id").
		Having("COUNT(feedings.id) < ?", meals).
		Order("finches.name ASC").
		Find(&finches).Error
	if err != nil {
		return nil, err
	}
	return finches, nil
}
