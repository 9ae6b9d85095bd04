package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultBucketName    = "coloringbucket"
	defaultProjectID     = "coloring-book-473815"
	defaultRegion        = "us-central1"
	defaultPort          = 8080
	defaultFontPath      = "DejaVuSans.ttf"
	defaultPublicBaseURL = "https://storage.googleapis.com"
	defaultLogLevel      = "info"
	defaultGinMode       = "release"
)

// GCPConfig holds Google Cloud configuration
type GCPConfig struct {
	BucketName    string
	ProjectID     string
	Region        string
	PublicBaseURL string
}

// Config holds all configuration for the application
type Config struct {
	Port     int
	FontPath string
	LogLevel string
	GinMode  string
	GCP      GCPConfig
}

// Load loads the configuration from environment variables. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{
		FontPath: getEnv("FONT_PATH", defaultFontPath),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		GinMode:  getEnv("GIN_MODE", defaultGinMode),
		GCP: GCPConfig{
			BucketName:    getEnv("GCS_BUCKET_NAME", defaultBucketName),
			ProjectID:     getEnv("GCP_PROJECT", defaultProjectID),
			Region:        getEnv("GCP_REGION", defaultRegion),
			PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", defaultPublicBaseURL), "/"),
		},
	}

	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		config.Port = port
	} else {
		config.Port = defaultPort // default value
	}

	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", config.Port)
	}

	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", config.LogLevel)
	}

	switch config.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", config.GinMode)
	}

	return config, nil
}

// Addr returns the listen address on all interfaces
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
