package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/straye-as/finch-collector/internal/config"
	"go.uber.org/zap"
)

// ErrInvalidObjectName is returned for bucket or key names that would escape
// the bucket (path separators, "." or "..").
var ErrInvalidObjectName = errors.New("invalid object name")

// ObjectStore writes and removes photo objects addressed by bucket and key
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key, contentType string, data io.Reader) (int64, error)
	Delete(ctx context.Context, bucket, key string) error
}

// NewObjectStore creates the object store selected by cfg.Mode.
// In local mode objects are written under LocalBasePath, in azure mode they
// go to the Blob Storage account named by AccessKey.
func NewObjectStore(ctx context.Context, cfg *config.PhotoStorageConfig, logger *zap.Logger) (ObjectStore, error) {
	switch cfg.Mode {
	case "local", "":
		return NewLocalStorage(cfg.LocalBasePath)
	case "azure":
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key required for azure photo storage")
		}
		return NewAzureBlobStorage(ctx, &AzureBlobConfig{
			AccountName: cfg.AccessKey,
			AccountKey:  cfg.SecretKey,
			ServiceURL:  cfg.BaseURL,
			Container:   cfg.Bucket,
		}, logger)
	default:
		return nil, fmt.Errorf("unsupported photo storage mode: %s", cfg.Mode)
	}
}

// LocalStorage implements ObjectStore on the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

// BasePath returns the root directory objects are written under
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

// Upload writes data to basePath/bucket/key
func (s *LocalStorage) Upload(ctx context.Context, bucket, key, contentType string, data io.Reader) (int64, error) {
	fullPath, err := s.objectPath(bucket, key)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	size, err := io.Copy(file, &contextReader{ctx: ctx, r: data})
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(fullPath)
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	return size, nil
}

// Delete removes basePath/bucket/key. Deleting a missing object is not an error.
func (s *LocalStorage) Delete(ctx context.Context, bucket, key string) error {
	fullPath, err := s.objectPath(bucket, key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *LocalStorage) objectPath(bucket, key string) (string, error) {
	for _, name := range []string{bucket, key} {
		if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
			return "", fmt.Errorf("%w: %q", ErrInvalidObjectName, name)
		}
	}
	return filepath.Join(s.basePath, bucket, key), nil
}

// contextReader stops a copy once the context is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
