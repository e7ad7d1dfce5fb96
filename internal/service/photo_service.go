package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/config"
	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/mapper"
	"github.com/straye-as/finch-collector/internal/metrics"
	"github.com/straye-as/finch-collector/internal/repository"
	"github.com/straye-as/finch-collector/internal/storage"
	"go.uber.org/zap"
)

const (
	photoKeyTokenLength = 6
	cleanupTimeout      = 10 * time.Second

	// storage_key is VARCHAR(200); keys are the token plus the extension
	maxPhotoExtensionLength = 16
)

// PhotoUpload is one submitted photo file
type PhotoUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// PhotoService stores photo files in the object store and records them against finches
type PhotoService struct {
	finchRepo *repository.FinchRepository
	photoRepo *repository.PhotoRepository
	store     storage.ObjectStore
	cfg       *config.PhotoStorageConfig
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewPhotoService creates a new photo service instance
func NewPhotoService(
	finchRepo *repository.FinchRepository,
	photoRepo *repository.PhotoRepository,
	store storage.ObjectStore,
	cfg *config.PhotoStorageConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) *PhotoService {
	return &PhotoService{
		finchRepo: finchRepo,
		photoRepo: photoRepo,
		store:     store,
		cfg:       cfg,
		metrics:   m,
		logger:    logger,
	}
}

// AddPhoto uploads the file once, with no retry, and records a Photo for the
// finch when the upload succeeds. A nil upload yields ErrNoPhotoFile, a
// filename without extension ErrInvalidFilename and a rejected or timed out
// upload ErrUploadFailed. None of those leave a Photo behind.
func (s *PhotoService) AddPhoto(ctx context.Context, finchID uuid.UUID, upload *PhotoUpload) (*domain.PhotoDTO, error) {
	if err := ensureFinch(ctx, s.finchRepo, finchID); err != nil {
		return nil, err
	}

	if upload == nil || upload.Body == nil {
		s.metrics.PhotoUpload(domain.OutcomeNoFile, 0)
		return nil, ErrNoPhotoFile
	}

	key, err := GeneratePhotoKey(upload.Filename)
	if err != nil {
		s.metrics.PhotoUpload(domain.OutcomeInvalidFilename, 0)
		return nil, err
	}

	log := s.logger.With(
		zap.String("finch_id", finchID.String()),
		zap.String("bucket", s.cfg.Bucket),
		zap.String("key", key),
	)

	size, err := s.upload(ctx, key, photoContentType(upload), upload.Body)
	if err != nil {
		log.Error("Photo upload failed", zap.Error(err))
		s.metrics.PhotoUpload(domain.OutcomeUploadFailed, 0)
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	photo := &domain.Photo{
		URL:        s.cfg.PhotoURL(key),
		StorageKey: key,
		FinchID:    finchID,
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		s.removeObject(ctx, log, key)
		return nil, fmt.Errorf("failed to record photo: %w", err)
	}

	s.metrics.PhotoUpload(domain.OutcomeOK, size)
	log.Info("Photo stored", zap.Int64("size", size), zap.String("url", photo.URL))

	dto := mapper.ToPhotoDTO(photo)
	return &dto, nil
}

// ListByFinch returns the finch's photos
func (s *PhotoService) ListByFinch(ctx context.Context, finchID uuid.UUID) ([]domain.PhotoDTO, error) {
	if err := ensureFinch(ctx, s.finchRepo, finchID); err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.ListByFinch(ctx, finchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return mapper.ToPhotoDTOs(photos), nil
}

func (s *PhotoService) upload(ctx context.Context, key, contentType string, body io.Reader) (int64, error) {
	if timeout := s.cfg.UploadTimeoutDuration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.store.Upload(ctx, s.cfg.Bucket, key, contentType, body)
}

// removeObject deletes an uploaded object whose record could not be saved
func (s *PhotoService) removeObject(ctx context.Context, log *zap.Logger, key string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := s.store.Delete(ctx, s.cfg.Bucket, key); err != nil {
		log.Warn("Failed to remove orphaned photo object", zap.Error(err))
	}
}

// GeneratePhotoKey builds the object key of a photo: six hex characters of a
// random UUID followed by the extension of filename, taken from its last ".".
func GeneratePhotoKey(filename string) (string, error) {
	ext, err := PhotoExtension(filename)
	if err != nil {
		return "", err
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:photoKeyTokenLength]
	return token + ext, nil
}

// PhotoExtension returns the substring of filename from its last "." to the end
func PhotoExtension(filename string) (string, error) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", ErrInvalidFilename
	}

	ext := filename[idx:]
	if len(ext) > maxPhotoExtensionLength || strings.ContainsAny(ext, `/\`) {
		return "", ErrInvalidFilename
	}
	return ext, nil
}

func photoContentType(upload *PhotoUpload) string {
	if upload.ContentType != "" && upload.ContentType != "application/octet-stream" {
		return upload.ContentType
	}
	if ext, err := PhotoExtension(upload.Filename); err == nil {
		if byExt := mime.TypeByExtension(strings.ToLower(ext)); byExt != "" {
			return byExt
		}
	}
	return "application/octet-stream"
}
