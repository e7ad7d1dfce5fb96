package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/mapper"
	"github.com/straye-as/finch-collector/internal/repository"
	"go.uber.org/zap"
)

// ToyService handles business logic for toys
type ToyService struct {
	toyRepo *repository.ToyRepository
	logger  *zap.Logger
}

// NewToyService creates a new toy service instance
func NewToyService(toyRepo *repository.ToyRepository, logger *zap.Logger) *ToyService {
	return &ToyService{
		toyRepo: toyRepo,
		logger:  logger,
	}
}

// List returns all toys matching the filter
func (s *ToyService) List(ctx context.Context, filter repository.ListFilter) ([]domain.ToyDTO, error) {
	toys, err := s.toyRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list toys: %w", err)
	}
	return mapper.ToToyDTOs(toys), nil
}

// GetByID returns a single toy
func (s *ToyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ToyDTO, error) {
	toy, err := s.toyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapToyError(err)
	}

	dto := mapper.ToToyDTO(toy)
	return &dto, nil
}

// Create creates a new toy
func (s *ToyService) Create(ctx context.Context, req *domain.CreateToyRequest) (*domain.ToyDTO, error) {
	toy := &domain.Toy{
		Name:  req.Name,
		Color: req.Color,
	}

	if err := s.toyRepo.Create(ctx, toy); err != nil {
		return nil, fmt.Errorf("failed to create toy: %w", err)
	}

	s.logger.Info("Toy created", zap.String("toy_id", toy.ID.String()))

	dto := mapper.ToToyDTO(toy)
	return &dto, nil
}

// Update changes the name and color of a toy
func (s *ToyService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateToyRequest) (*domain.ToyDTO, error) {
	toy, err := s.toyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapToyError(err)
	}

	toy.Name = req.Name
	toy.Color = req.Color

	if err := s.toyRepo.Update(ctx, toy); err != nil {
		return nil, fmt.Errorf("failed to update toy: %w", err)
	}

	dto := mapper.ToToyDTO(toy)
	return &dto, nil
}

// Delete removes a toy from every finch's toy set, then the toy itself
func (s *ToyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.toyRepo.Delete(ctx, id); err != nil {
		return mapToyError(err)
	}

	s.logger.Info("Toy deleted", zap.String("toy_id", id.String()))
	return nil
}
