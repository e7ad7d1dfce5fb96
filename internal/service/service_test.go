package service_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/straye-as/finch-collector/internal/config"
	"github.com/straye-as/finch-collector/internal/metrics"
	"github.com/straye-as/finch-collector/internal/repository"
	"github.com/straye-as/finch-collector/internal/service"
	"github.com/straye-as/finch-collector/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

// fakeStore is an in-memory ObjectStore
type fakeStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	deleted   []string
	uploadErr error
	block     bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (f *fakeStore) Upload(ctx context.Context, bucket, key, contentType string, data io.Reader) (int64, error) {
	if f.block {
		<-ctx.Done()
		return 0, ctx.Err()
	}
	if f.uploadErr != nil {
		return 0, f.uploadErr
	}

	body, err := io.ReadAll(data)
	if err != nil {
		return 0, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[bucket+"/"+key] = body
	return int64(len(body)), nil
}

func (f *fakeStore) Delete(ctx context.Context, bucket, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, bucket+"/"+key)
	f.deleted = append(f.deleted, bucket+"/"+key)
	return nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

var errStoreDown = errors.New("store unavailable")

type testEnv struct {
	db           *gorm.DB
	store        *fakeStore
	logs         *observer.ObservedLogs
	metrics      *metrics.Metrics
	photoCfg     *config.PhotoStorageConfig
	finches      *service.FinchService
	toys         *service.ToyService
	feedings     *service.FeedingService
	associations *service.AssociationService
	photos       *service.PhotoService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	m := metrics.New()
	store := newFakeStore()
	photoCfg := &config.PhotoStorageConfig{
		Mode:          "local",
		Bucket:        "finch-photos",
		BaseURL:       "https://cdn.example.com/",
		UploadTimeout: 1,
	}

	finchRepo := repository.NewFinchRepository(db)
	toyRepo := repository.NewToyRepository(db)
	feedingRepo := repository.NewFeedingRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	return &testEnv{
		db:           db,
		store:        store,
		logs:         logs,
		metrics:      m,
		photoCfg:     photoCfg,
		finches:      service.NewFinchService(finchRepo, toyRepo, feedingRepo, logger),
		toys:         service.NewToyService(toyRepo, logger),
		feedings:     service.NewFeedingService(finchRepo, feedingRepo, m, logger),
		associations: service.NewAssociationService(finchRepo, toyRepo, m, logger),
		photos:       service.NewPhotoService(finchRepo, photoRepo, store, photoCfg, m, logger),
	}
}
