package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/mapper"
	"github.com/straye-as/finch-collector/internal/metrics"
	"github.com/straye-as/finch-collector/internal/repository"
	"go.uber.org/zap"
)

// FeedingService records feedings for finches
type FeedingService struct {
	finchRepo   *repository.FinchRepository
	feedingRepo *repository.FeedingRepository
	validate    *validator.Validate
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewFeedingService creates a new feeding service instance
func NewFeedingService(
	finchRepo *repository.FinchRepository,
	feedingRepo *repository.FeedingRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *FeedingService {
	return &FeedingService{
		finchRepo:   finchRepo,
		feedingRepo: feedingRepo,
		validate:    validator.New(),
		metrics:     m,
		logger:      logger,
	}
}

// AddFeeding validates req and, when valid, records exactly one feeding for
// the finch. Invalid input yields ErrInvalidFeeding and writes nothing.
func (s *FeedingService) AddFeeding(ctx context.Context, finchID uuid.UUID, req *domain.AddFeedingRequest) (*domain.FeedingDTO, error) {
	if err := ensureFinch(ctx, s.finchRepo, finchID); err != nil {
		return nil, err
	}

	if req == nil || s.validate.Struct(req) != nil {
		s.metrics.Feeding(domain.OutcomeInvalidInput)
		return nil, ErrInvalidFeeding
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		s.metrics.Feeding(domain.OutcomeInvalidInput)
		return nil, ErrInvalidFeeding
	}

	feeding := &domain.Feeding{
		Date:    date,
		Meal:    domain.Meal(req.Meal),
		FinchID: finchID,
	}

	if err := s.feedingRepo.Create(ctx, feeding); err != nil {
		return nil, fmt.Errorf("failed to create feeding: %w", err)
	}

	s.metrics.Feeding(domain.OutcomeOK)
	s.logger.Debug("Feeding recorded",
		zap.String("finch_id", finchID.String()),
		zap.String("date", req.Date),
		zap.String("meal", req.Meal),
	)

	dto := mapper.ToFeedingDTO(feeding)
	return &dto, nil
}

// ListByFinch returns the finch's feedings, newest first
func (s *FeedingService) ListByFinch(ctx context.Context, finchID uuid.UUID) ([]domain.FeedingDTO, error) {
	if err := ensureFinch(ctx, s.finchRepo, finchID); err != nil {
		return nil, err
	}

	feedings, err := s.feedingRepo.ListByFinch(ctx, finchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedings: %w", err)
	}
	return mapper.ToFeedingDTOs(feedings), nil
}
