package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/straye-as/finch-collector/internal/secrets"
	"go.uber.org/zap"
)

const (
	defaultPhotoBucket  = "finch-photos"
	defaultPhotoBaseURL = "/static/"
)

// Config holds all application configuration
type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	PhotoStorage PhotoStorageConfig
	Secrets      SecretsConfig
	Logging      LoggingConfig
	Server       ServerConfig
	CORS         CORSConfig
	Security     SecurityConfig
	RateLimit    RateLimitConfig
	Jobs         JobsConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

type DatabaseConfig struct {
	// Driver selects the GORM dialector: "postgres" or "sqlite"
	Driver   string
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	// SQLitePath is the database file used by the sqlite driver
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	// AutoMigrate runs GORM auto-migration on startup (development only)
	AutoMigrate bool
}

// PhotoStorageConfig is everything photo ingestion needs to reach the
// object store. It is passed explicitly to the storage and service layers.
type PhotoStorageConfig struct {
	// Mode is "local" or "azure"
	Mode string
	// AccessKey is the storage account name in azure mode
	AccessKey string
	// SecretKey is the storage account key in azure mode
	SecretKey string
	// Bucket is the container the photos are written to
	Bucket string
	// BaseURL is prefixed to bucket and key to build the public photo URL
	BaseURL string
	// LocalBasePath is the root directory used in local mode
	LocalBasePath   string
	UploadTimeout   int // seconds
	MaxUploadSizeMB int64
}

type SecretsConfig struct {
	// Source determines where secrets are loaded from: "environment", "vault", or "auto"
	// "auto" uses environment in development, vault in staging/production
	Source       string
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	EnableSwagger  bool
	EnableMetrics  bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	// AllowedOrigins is a list of allowed origins for CORS requests
	// Use "*" to allow all origins (not recommended for production)
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	// MaxAge is the max age (in seconds) for preflight cache
	MaxAge int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	HSTSPreload           bool
	ContentSecurityPolicy string
	// FrameOptions sets the X-Frame-Options header (DENY, SAMEORIGIN, or empty to disable)
	FrameOptions       string
	ContentTypeNosniff bool
	ReferrerPolicy     string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled bool
	// RequestsPerMinute is the rate limit per client IP
	RequestsPerMinute int
	// WhitelistIPs is a list of IPs that bypass rate limiting
	WhitelistIPs []string
	// WhitelistPaths is a list of paths that bypass rate limiting (e.g., /health)
	WhitelistPaths []string
}

// JobsConfig holds background job configuration
type JobsConfig struct {
	FeedingReminderEnabled bool
	// FeedingReminderCron uses the six-field format (with seconds)
	FeedingReminderCron    string
	FeedingReminderTimeout int // seconds
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// RequestTimeoutDuration returns request timeout as duration
func (s *ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// UploadTimeoutDuration returns the photo upload timeout as duration
func (p *PhotoStorageConfig) UploadTimeoutDuration() time.Duration {
	return time.Duration(p.UploadTimeout) * time.Second
}

// PhotoURL builds the public URL of a stored photo
func (p *PhotoStorageConfig) PhotoURL(key string) string {
	return p.BaseURL + p.Bucket + "/" + key
}

// FeedingReminderTimeoutDuration returns the reminder job timeout as duration
func (j *JobsConfig) FeedingReminderTimeoutDuration() time.Duration {
	return time.Duration(j.FeedingReminderTimeout) * time.Second
}

// Load loads configuration from file and environment variables
// This is a basic load that doesn't fetch secrets from vault
// Use LoadWithSecrets for full secret resolution
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyLegacyPhotoEnv(v, &cfg.PhotoStorage)

	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}

	return &cfg, nil
}

// applyLegacyPhotoEnv fills unset photo storage fields from the
// AWS_ACCESS_KEY / AWS_SECRET_ACCESS_KEY / S3_BUCKET / S3_BASE_URL variables
// older deployments were configured with.
func applyLegacyPhotoEnv(v *viper.Viper, cfg *PhotoStorageConfig) {
	if cfg.AccessKey == "" {
		cfg.AccessKey = v.GetString("AWS_ACCESS_KEY")
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = v.GetString("AWS_SECRET_ACCESS_KEY")
	}
	if cfg.Bucket == "" {
		cfg.Bucket = v.GetString("S3_BUCKET")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = v.GetString("S3_BASE_URL")
	}

	if cfg.Bucket == "" {
		cfg.Bucket = defaultPhotoBucket
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultPhotoBaseURL
	}
}

// Validate checks the configuration for values the application cannot start without
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	switch c.PhotoStorage.Mode {
	case "local":
	case "azure":
		if c.PhotoStorage.AccessKey == "" || c.PhotoStorage.SecretKey == "" {
			return fmt.Errorf("photoStorage.accessKey and photoStorage.secretKey are required in azure mode")
		}
		if c.PhotoStorage.BaseURL == "" {
			return fmt.Errorf("photoStorage.baseURL is required in azure mode")
		}
	default:
		return fmt.Errorf("unsupported photo storage mode: %s", c.PhotoStorage.Mode)
	}

	if c.PhotoStorage.Bucket == "" {
		return fmt.Errorf("photoStorage.bucket is required")
	}
	return nil
}

// LoadWithSecrets loads configuration and resolves secrets from the configured source.
// Key Vault is used when USE_AZURE_KEY_VAULT=true and the environment is
// staging or production; otherwise environment variables are used as is.
// The result is validated before it is returned.
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := resolveSecrets(ctx, logger)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func resolveSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	useKeyVault := strings.ToLower(os.Getenv("USE_AZURE_KEY_VAULT")) == "true"
	isValidEnv := cfg.App.Environment == "staging" || cfg.App.Environment == "production"

	if !useKeyVault {
		logger.Info("USE_AZURE_KEY_VAULT not enabled, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if !isValidEnv {
		logger.Warn("USE_AZURE_KEY_VAULT is enabled but environment is not staging or production, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if cfg.Secrets.KeyVaultName == "" {
		return nil, fmt.Errorf("AZURE_KEY_VAULT_NAME is required when USE_AZURE_KEY_VAULT=true")
	}

	provider, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:       secrets.SourceVault,
		VaultName:    cfg.Secrets.KeyVaultName,
		Environment:  cfg.App.Environment,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     time.Duration(cfg.Secrets.CacheTTL) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider (USE_AZURE_KEY_VAULT=true requires valid vault): %w", err)
	}

	if err := ApplySecrets(ctx, cfg, provider); err != nil {
		return nil, err
	}

	logger.Info("Secrets loaded from vault successfully",
		zap.String("key_vault_name", cfg.Secrets.KeyVaultName),
	)
	return cfg, nil
}

// SecretSource is the part of the secrets provider configuration needs
type SecretSource interface {
	GetSecretOrEnv(ctx context.Context, secretName, envName string) (string, error)
}

// ApplySecrets overwrites credential fields with values from the secret source.
// Missing secrets leave the existing value untouched.
func ApplySecrets(ctx context.Context, cfg *Config, source SecretSource) error {
	if source == nil {
		return fmt.Errorf("secret source is required")
	}

	if host, err := source.GetSecretOrEnv(ctx, "POSTGRES-MAIN-HOST", "DATABASE_HOST"); err == nil && host != "" {
		cfg.Database.Host = host
	}
	if user, err := source.GetSecretOrEnv(ctx, "POSTGRES-MAIN-USER", "DATABASE_USER"); err == nil && user != "" {
		cfg.Database.User = user
	}
	if password, err := source.GetSecretOrEnv(ctx, "POSTGRES-MAIN-PASSWORD", "DATABASE_PASSWORD"); err == nil && password != "" {
		cfg.Database.Password = password
	}

	if accessKey, err := source.GetSecretOrEnv(ctx, "photo-storage-access-key", "PHOTOSTORAGE_ACCESSKEY"); err == nil && accessKey != "" {
		cfg.PhotoStorage.AccessKey = accessKey
	}
	if secretKey, err := source.GetSecretOrEnv(ctx, "photo-storage-secret-key", "PHOTOSTORAGE_SECRETKEY"); err == nil && secretKey != "" {
		cfg.PhotoStorage.SecretKey = secretKey
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Finch Collector API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	// Database defaults
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "finchcollector")
	v.SetDefault("database.user", "finch_user")
	v.SetDefault("database.password", "finch_password")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "./finchcollector.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 300)
	v.SetDefault("database.autoMigrate", false)

	// Photo storage defaults
	v.SetDefault("photoStorage.mode", "local")
	v.SetDefault("photoStorage.accessKey", "")
	v.SetDefault("photoStorage.secretKey", "")
	v.SetDefault("photoStorage.bucket", "")
	v.SetDefault("photoStorage.baseURL", "")
	v.SetDefault("photoStorage.localBasePath", "./storage")
	v.SetDefault("photoStorage.uploadTimeout", 30)
	v.SetDefault("photoStorage.maxUploadSizeMB", 10)

	// Secrets defaults
	v.SetDefault("secrets.source", "auto")
	v.SetDefault("secrets.cacheEnabled", true)
	v.SetDefault("secrets.cacheTTL", 300)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Server defaults
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 60)
	v.SetDefault("server.requestTimeout", 60)
	v.SetDefault("server.enableSwagger", true)
	v.SetDefault("server.enableMetrics", true)

	// CORS defaults - restrictive by default
	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"Location", "X-Request-ID", "X-Workflow-Outcome"})
	v.SetDefault("cors.allowCredentials", false)
	v.SetDefault("cors.maxAge", 300)

	// Security header defaults
	v.SetDefault("security.enableHSTS", false)
	v.SetDefault("security.hstsMaxAge", 31536000)
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.hstsPreload", false)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")

	// Rate limiting defaults
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 120)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/db", "/health/ready", "/metrics"})

	// Jobs defaults
	v.SetDefault("jobs.feedingReminderEnabled", false)
	v.SetDefault("jobs.feedingReminderCron", "0 0 18 * * *")
	v.SetDefault("jobs.feedingReminderTimeout", 60)
}
