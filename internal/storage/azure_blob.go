package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"go.uber.org/zap"
)

// AzureBlobConfig holds the shared key credentials of a storage account
type AzureBlobConfig struct {
	AccountName string
	AccountKey  string
	// ServiceURL is the blob endpoint, e.g. https://acct.blob.core.windows.net/
	ServiceURL string
	// Container is created on startup when it does not exist
	Container string
}

// AzureBlobStorage implements ObjectStore on Azure Blob Storage.
// Buckets map to containers.
type AzureBlobStorage struct {
	client *azblob.Client
	logger *zap.Logger
}

// NewAzureBlobStorage creates a new Azure Blob Storage instance
func NewAzureBlobStorage(ctx context.Context, cfg *AzureBlobConfig, logger *zap.Logger) (*AzureBlobStorage, error) {
	if cfg.ServiceURL == "" {
		return nil, fmt.Errorf("service URL required for azure photo storage")
	}

	cred, err := azblob.NewSharedKeyCredential(cfg.AccountName, cfg.AccountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create shared key credential: %w", err)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(cfg.ServiceURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	if cfg.Container != "" {
		_, err = client.CreateContainer(ctx, cfg.Container, nil)
		if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			return nil, fmt.Errorf("failed to create container: %w", err)
		}
	}

	logger.Info("Azure Blob Storage initialized",
		zap.String("account", cfg.AccountName),
		zap.String("container", cfg.Container),
	)

	return &AzureBlobStorage{
		client: client,
		logger: logger,
	}, nil
}

// Upload streams data to the blob named key in the bucket container
func (s *AzureBlobStorage) Upload(ctx context.Context, bucket, key, contentType string, data io.Reader) (int64, error) {
	uploadOptions := &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	}

	reader := &countingReader{r: data}

	_, err := s.client.UploadStream(ctx, bucket, key, reader, uploadOptions)
	if err != nil {
		return 0, fmt.Errorf("failed to upload blob: %w", err)
	}

	s.logger.Info("Photo uploaded to Azure Blob Storage",
		zap.String("blobName", key),
		zap.String("container", bucket),
		zap.String("contentType", contentType),
		zap.Int64("size", reader.count),
	)

	return reader.count, nil
}

// countingReader wraps an io.Reader and counts the number of bytes read
type countingReader struct {
	r     io.Reader
	count int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.count += int64(n)
	return n, err
}

// Delete removes the blob. A blob that does not exist is not an error.
func (s *AzureBlobStorage) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.client.DeleteBlob(ctx, bucket, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			s.logger.Debug("Blob already deleted or not found",
				zap.String("blobName", key),
				zap.String("container", bucket),
			)
			return nil
		}
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	s.logger.Info("Photo deleted from Azure Blob Storage",
		zap.String("blobName", key),
		zap.String("container", bucket),
	)

	return nil
}
