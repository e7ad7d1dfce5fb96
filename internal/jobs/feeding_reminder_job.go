package jobs

import (
	"context"
	"time"

	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/logger"
	"github.com/straye-as/finch-collector/internal/metrics"
	"go.uber.org/zap"
)

// FeedingReminderJobName is the scheduler name of the feeding reminder job
const FeedingReminderJobName = "feeding_reminder"

// UnderfedFinder lists finches that have had fewer than meals feedings on day.
// repository.FinchRepository satisfies it.
type UnderfedFinder interface {
	ListUnderfedOn(ctx context.Context, day time.Time, meals int) ([]domain.Finch, error)
}

// FeedingReminderJob logs a reminder for every finch not fully fed today
// and publishes the count as the underfed_finches gauge.
type FeedingReminderJob struct {
	finches UnderfedFinder
	metrics *metrics.Metrics
	logger  *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewFeedingReminderJob creates the job. timeout bounds a single run.
func NewFeedingReminderJob(finches UnderfedFinder, m *metrics.Metrics, logger *zap.Logger, timeout time.Duration) *FeedingReminderJob {
	return &FeedingReminderJob{
		finches: finches,
		metrics: m,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

// WithClock replaces the job's time source
func (j *FeedingReminderJob) WithClock(now func() time.Time) *FeedingReminderJob {
	j.now = now
	return j
}

// Run is the scheduler entry point
func (j *FeedingReminderJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if _, err := j.RunOnce(ctx); err != nil {
		j.logger.Error("feeding reminder job failed", zap.Error(err))
	}
}

// RunOnce checks today's feedings and returns the underfed finches
func (j *FeedingReminderJob) RunOnce(ctx context.Context) ([]domain.Finch, error) {
	start := time.Now()
	today := j.now().UTC()

	finches, err := j.finches.ListUnderfedOn(ctx, today, len(domain.Meals))
	if err != nil {
		return nil, err
	}

	for _, f := range finches {
		logger.WithFinch(j.logger, f.ID.String()).Warn("finch not fully fed today",
			zap.String("finch_name", f.Name),
			zap.String("date", today.Format(domain.DateLayout)))
	}
	j.metrics.SetUnderfed(len(finches))

	j.logger.Info("feeding reminder job completed",
		zap.Int("underfed", len(finches)),
		zap.Duration("duration", time.Since(start)))

	return finches, nil
}
