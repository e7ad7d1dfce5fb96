package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/straye-as/finch-collector/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Finch Collector API", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "local", cfg.PhotoStorage.Mode)
	assert.Equal(t, "finch-photos", cfg.PhotoStorage.Bucket)
	assert.Equal(t, "/static/", cfg.PhotoStorage.BaseURL)
	assert.Equal(t, 30, cfg.PhotoStorage.UploadTimeout)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.Jobs.FeedingReminderEnabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("PHOTOSTORAGE_MODE", "azure")
	t.Setenv("PHOTOSTORAGE_BUCKET", "birds")
	t.Setenv("PHOTOSTORAGE_BASEURL", "https://acct.blob.core.windows.net/")
	t.Setenv("PHOTOSTORAGE_ACCESSKEY", "acct")
	t.Setenv("PHOTOSTORAGE_SECRETKEY", "c2VjcmV0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "azure", cfg.PhotoStorage.Mode)
	assert.Equal(t, "birds", cfg.PhotoStorage.Bucket)
	assert.Equal(t, "https://acct.blob.core.windows.net/", cfg.PhotoStorage.BaseURL)
	assert.Equal(t, "acct", cfg.PhotoStorage.AccessKey)
	assert.Equal(t, "c2VjcmV0", cfg.PhotoStorage.SecretKey)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_LegacyPhotoEnvironment(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY", "legacy-access")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "legacy-secret")
	t.Setenv("S3_BUCKET", "legacy-bucket")
	t.Setenv("S3_BASE_URL", "https://legacy.example.com/")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "legacy-access", cfg.PhotoStorage.AccessKey)
	assert.Equal(t, "legacy-secret", cfg.PhotoStorage.SecretKey)
	assert.Equal(t, "legacy-bucket", cfg.PhotoStorage.Bucket)
	assert.Equal(t, "https://legacy.example.com/", cfg.PhotoStorage.BaseURL)
}

func TestPhotoStorageConfig_PhotoURL(t *testing.T) {
	cfg := config.PhotoStorageConfig{
		BaseURL: "https://s3.amazonaws.com/",
		Bucket:  "finches",
	}

	assert.Equal(t, "https://s3.amazonaws.com/finches/a1b2c3.png", cfg.PhotoURL("a1b2c3.png"))
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Database: config.DatabaseConfig{Driver: "sqlite"},
			PhotoStorage: config.PhotoStorageConfig{
				Mode:   "local",
				Bucket: "finch-photos",
			},
		}
	}

	t.Run("local mode is valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := valid()
		cfg.Database.Driver = "mysql"
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown storage mode", func(t *testing.T) {
		cfg := valid()
		cfg.PhotoStorage.Mode = "ftp"
		assert.Error(t, cfg.Validate())
	})

	t.Run("azure mode requires credentials", func(t *testing.T) {
		cfg := valid()
		cfg.PhotoStorage.Mode = "azure"
		cfg.PhotoStorage.BaseURL = "https://acct.blob.core.windows.net/"
		assert.Error(t, cfg.Validate())

		cfg.PhotoStorage.AccessKey = "acct"
		cfg.PhotoStorage.SecretKey = "key"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("bucket is required", func(t *testing.T) {
		cfg := valid()
		cfg.PhotoStorage.Bucket = ""
		assert.Error(t, cfg.Validate())
	})
}

type mapSecretSource map[string]string

func (m mapSecretSource) GetSecretOrEnv(_ context.Context, secretName, _ string) (string, error) {
	if v, ok := m[secretName]; ok {
		return v, nil
	}
	return "", errors.New("secret not found")
}

func TestApplySecrets(t *testing.T) {
	cfg := &config.Config{
		Database:     config.DatabaseConfig{Host: "localhost", Password: "from-env"},
		PhotoStorage: config.PhotoStorageConfig{AccessKey: "", SecretKey: ""},
	}

	err := config.ApplySecrets(context.Background(), cfg, mapSecretSource{
		"POSTGRES-MAIN-PASSWORD":   "from-vault",
		"photo-storage-access-key": "vault-account",
		"photo-storage-secret-key": "vault-key",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host, "missing secrets keep the existing value")
	assert.Equal(t, "from-vault", cfg.Database.Password)
	assert.Equal(t, "vault-account", cfg.PhotoStorage.AccessKey)
	assert.Equal(t, "vault-key", cfg.PhotoStorage.SecretKey)

	assert.Error(t, config.ApplySecrets(context.Background(), cfg, nil))
}

func TestLoadWithSecrets_Validates(t *testing.T) {
	t.Setenv("USE_AZURE_KEY_VAULT", "false")

	cfg, err := config.LoadWithSecrets(context.Background(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)

	t.Run("unsupported database driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "mysql")

		cfg, err := config.LoadWithSecrets(context.Background(), zap.NewNop())
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "unsupported database driver: mysql")
	})

	t.Run("unsupported photo storage mode", func(t *testing.T) {
		t.Setenv("PHOTOSTORAGE_MODE", "s3")

		_, err := config.LoadWithSecrets(context.Background(), zap.NewNop())
		assert.ErrorContains(t, err, "unsupported photo storage mode: s3")
	})
}
