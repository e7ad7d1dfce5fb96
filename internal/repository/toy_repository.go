package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/domain"
	"gorm.io/gorm"
)

// ToyRepository handles toy data access operations
type ToyRepository struct {
	db *gorm.DB
}

// NewToyRepository creates a new toy repository instance
func NewToyRepository(db *gorm.DB) *ToyRepository {
	return &ToyRepository{db: db}
}

// Create creates a new toy in the database
func (r *ToyRepository) Create(ctx context.Context, toy *domain.Toy) error {
	return r.db.WithContext(ctx).Create(toy).Error
}

// GetByID retrieves a toy by its ID
func (r *ToyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Toy, error) {
	var toy domain.Toy
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&toy).Error
	if err != nil {
		return nil, err
	}
	return &toy, nil
}

// List returns every toy matching the filter
func (r *ToyRepository) List(ctx context.Context, filter ListFilter) ([]domain.Toy, error) {
	var toys []domain.Toy
	query := applyListFilter(r.db.WithContext(ctx).Model(&domain.Toy{}), filter)
	if err := query.Find(&toys).Error; err != nil {
		return nil, err
	}
	return toys, nil
}

// ListNotOwnedBy returns all toys that are not associated with the finch
func (r *ToyRepository) ListNotOwnedBy(ctx context.Context, finchID uuid.UUID) ([]domain.Toy, error) {
	owned := r.db.Model(&domain.FinchToy{}).Select("toy_id").Where("finch_id = ?", finchID)

	var toys []domain.Toy
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", owned).
		Order("name ASC").
		Find(&toys).Error
	if err != nil {
		return nil, err
	}
	return toys, nil
}

// Update persists the mutable fields of a toy
func (r *ToyRepository) Update(ctx context.Context, toy *domain.Toy) error {
	return r.db.WithContext(ctx).Save(toy).Error
}

// Delete removes a toy and its finch associations. Finches are left untouched.
func (r *ToyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("toy_id = ?", id).Delete(&domain.FinchToy{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&domain.Toy{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
