package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/mapper"
	"github.com/straye-as/finch-collector/internal/repository"
	"go.uber.org/zap"
)

// FinchService handles business logic for finches
type FinchService struct {
	finchRepo   *repository.FinchRepository
	toyRepo     *repository.ToyRepository
	feedingRepo *repository.FeedingRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewFinchService creates a new finch service instance
func NewFinchService(
	finchRepo *repository.FinchRepository,
	toyRepo *repository.ToyRepository,
	feedingRepo *repository.FeedingRepository,
	logger *zap.Logger,
) *FinchService {
	return &FinchService{
		finchRepo:   finchRepo,
		toyRepo:     toyRepo,
		feedingRepo: feedingRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock replaces the clock used to decide what "today" is
func (s *FinchService) WithClock(now func() time.Time) *FinchService {
	s.now = now
	return s
}

// List returns all finches matching the filter
func (s *FinchService) List(ctx context.Context, filter repository.ListFilter) ([]domain.FinchDTO, error) {
	finches, err := s.finchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list finches: %w", err)
	}
	return mapper.ToFinchDTOs(finches), nil
}

// GetDetail returns a finch with its feedings, toys, photos, the toys it
// does not have yet, and whether it has had every meal today.
func (s *FinchService) GetDetail(ctx context.Context, id uuid.UUID) (*domain.FinchDetailDTO, error) {
	finch, err := s.finchRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, mapFinchError(err)
	}

	availableToys, err := s.toyRepo.ListNotOwnedBy(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list available toys: %w", err)
	}

	fedToday, err := s.feedingRepo.CountByFinchOnDate(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to count today's feedings: %w", err)
	}

	dto := mapper.ToFinchDetailDTO(finch, availableToys, fedToday >= int64(len(domain.Meals)))
	return &dto, nil
}

// Create creates a new finch
func (s *FinchService) Create(ctx context.Context, req *domain.CreateFinchRequest) (*domain.FinchDTO, error) {
	finch := &domain.Finch{
		Name:    req.Name,
		Color:   req.Color,
		Size:    req.Size,
		Habitat: req.Habitat,
	}

	if err := s.finchRepo.Create(ctx, finch); err != nil {
		return nil, fmt.Errorf("failed to create finch: %w", err)
	}

	s.logger.Info("Finch created",
		zap.String("finch_id", finch.ID.String()),
		zap.String("name", finch.Name),
	)

	dto := mapper.ToFinchDTO(finch)
	return &dto, nil
}

// Update changes the color, size and habitat of a finch. The name is fixed at creation.
func (s *FinchService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateFinchRequest) (*domain.FinchDTO, error) {
	finch, err := s.finchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapFinchError(err)
	}

	finch.Color = req.Color
	finch.Size = req.Size
	finch.Habitat = req.Habitat

	if err := s.finchRepo.Update(ctx, finch); err != nil {
		return nil, fmt.Errorf("failed to update finch: %w", err)
	}

	dto := mapper.ToFinchDTO(finch)
	return &dto, nil
}

// Delete removes a finch along with its feedings, photos and toy associations
func (s *FinchService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.finchRepo.Delete(ctx, id); err != nil {
		return mapFinchError(err)
	}

	s.logger.Info("Finch deleted", zap.String("finch_id", id.String()))
	return nil
}

// ensureFinch returns ErrFinchNotFound unless the finch exists
func ensureFinch(ctx context.Context, repo *repository.FinchRepository, id uuid.UUID) error {
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up finch: %w", err)
	}
	if !exists {
		return ErrFinchNotFound
	}
	return nil
}

func mapFinchError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFinchNotFound
	}
	return fmt.Errorf("finch store: %w", err)
}

func mapToyError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrToyNotFound
	}
	return fmt.Errorf("toy store: %w", err)
}
