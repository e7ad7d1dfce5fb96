package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/metrics"
	"github.com/straye-as/finch-collector/internal/repository"
	"go.uber.org/zap"
)

// AssociationService manages which toys belong to which finch
type AssociationService struct {
	finchRepo *repository.FinchRepository
	toyRepo   *repository.ToyRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewAssociationService creates a new association service instance
func NewAssociationService(
	finchRepo *repository.FinchRepository,
	toyRepo *repository.ToyRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *AssociationService {
	return &AssociationService{
		finchRepo: finchRepo,
		toyRepo:   toyRepo,
		metrics:   m,
		logger:    logger,
	}
}

// Associate adds the toy to the finch's toy set. It is a no-op when the
// toy is already there.
func (s *AssociationService) Associate(ctx context.Context, finchID, toyID uuid.UUID) error {
	if err := ensureFinch(ctx, s.finchRepo, finchID); err != nil {
		return err
	}

	if _, err := s.toyRepo.GetByID(ctx, toyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrToyNotFound
		}
		return fmt.Errorf("failed to look up toy: %w", err)
	}

	if err := s.finchRepo.AddToy(ctx, finchID, toyID); err != nil {
		return fmt.Errorf("failed to associate toy: %w", err)
	}

	s.metrics.Association("associate")
	s.logger.Debug("Toy associated",
		zap.String("finch_id", finchID.String()),
		zap.String("toy_id", toyID.String()),
	)
	return nil
}

// Disassociate removes the toy from the finch's toy set. It is a no-op when
// the toy is not there. Neither the finch nor the toy is deleted.
func (s *AssociationService) Disassociate(ctx context.Context, finchID, toyID uuid.UUID) error {
	if err := ensureFinch(ctx, s.finchRepo, finchID); err != nil {
		return err
	}

	if err := s.finchRepo.RemoveToy(ctx, finchID, toyID); err != nil {
		return fmt.Errorf("failed to disassociate toy: %w", err)
	}

	s.metrics.Association("disassociate")
	s.logger.Debug("Toy disassociated",
		zap.String("finch_id", finchID.String()),
		zap.String("toy_id", toyID.String()),
	)
	return nil
}
