package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application-level settings. Connection strings for the
// backing stores stay env-driven in their Init functions.
type Config struct {
	Port     string
	LogLevel string

	JWTSecret string
	JWTTTL    time.Duration

	// public submission uploads
	UploadMaxBytes int64
	UploadBackend  string // "local" or "gcs"
	UploadDir      string
	UploadBucket   string

	SeedPassword string

	ReportCacheTTL time.Duration
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_TTL", "12h")
	v.SetDefault("MAX_FILE_SIZE", 5<<20)
	v.SetDefault("UPLOAD_BACKEND", "local")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("SEED_PASSWORD", "admin123")
	v.SetDefault("REPORT_CACHE_TTL", "30s")

	cfg := &Config{
		Port:           v.GetString("PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTTTL:         v.GetDuration("JWT_TTL"),
		UploadMaxBytes: v.GetInt64("MAX_FILE_SIZE"),
		UploadBackend:  v.GetString("UPLOAD_BACKEND"),
		UploadDir:      v.GetString("UPLOAD_DIR"),
		UploadBucket:   v.GetString("UPLOAD_BUCKET"),
		SeedPassword:   v.GetString("SEED_PASSWORD"),
		ReportCacheTTL: v.GetDuration("REPORT_CACHE_TTL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.UploadMaxBytes <= 0 {
		errs = append(errs, errors.New("MAX_FILE_SIZE must be positive"))
	}
	switch c.UploadBackend {
	case "local":
		if c.UploadDir == "" {
			errs = append(errs, errors.New("UPLOAD_DIR is required for the local backend"))
		}
	case "gcs":
		if c.UploadBucket == "" {
			errs = append(errs, errors.New("UPLOAD_BUCKET is required for the gcs backend"))
		}
	default:
		errs = append(errs, errors.New("UPLOAD_BACKEND must be local or gcs"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
