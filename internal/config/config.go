package config

import (
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Feed settings
	FeedURL string `json:"feed_url"`

	// Revalidation cache settings
	CacheType   string `json:"cache_type"` // file, memory or cloud-storage
	CacheFile   string `json:"cache_file"`
	CacheBucket string `json:"cache_bucket"`

	// Optional cron expression for background warm refreshes.
	// Empty disables the scheduler.
	RefreshSchedule string `json:"refresh_schedule"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Host:            getEnvOrDefault("HOST", "0.0.0.0"),
		FeedURL:         getEnvOrDefault("FEED_URL", "https://investinglive.com/feed"),
		CacheType:       getEnvOrDefault("CACHE_TYPE", "file"),
		CacheFile:       getEnvOrDefault("CACHE_FILE", ".ilive_feed_cache.json"),
		CacheBucket:     getEnvOrDefault("CACHE_BUCKET", "ilive-digest-cache"),
		RefreshSchedule: getEnvOrDefault("REFRESH_SCHEDULE", ""),
	}

	return config, config.validate()
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	switch c.CacheType {
	case "file", "memory", "cloud-storage":
	default:
		return &ConfigError{Field: "CACHE_TYPE", Message: "must be file, memory or cloud-storage"}
	}

	u, err := url.Parse(c.FeedURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return &ConfigError{Field: "FEED_URL", Message: "must be an http or https URL"}
	}

	if c.CacheType == "file" && c.CacheFile == "" {
		return &ConfigError{Field: "CACHE_FILE", Message: "cache file path is required for file cache"}
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
