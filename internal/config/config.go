// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
)

// Default limits.
const (
	DefaultValidatorCacheMaxItems = 512
	DefaultMaxSamples             = 100
)

// Config holds all configuration for the MCP server.
type Config struct {
	DefaultRootName        string // DEFAULT_ROOT_NAME, default "Output"
	ValidatorCacheMaxItems int    // VALIDATOR_CACHE_MAX_ITEMS, default 512
	MaxSamples             int    // MAX_SAMPLES, default 100 (per tool call)

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFormat     string // LOG_FORMAT, "text" or "json", default "text"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		DefaultRootName:        getEnvString("DEFAULT_ROOT_NAME", "Output"),
		ValidatorCacheMaxItems: getEnvInt("VALIDATOR_CACHE_MAX_ITEMS", DefaultValidatorCacheMaxItems),
		MaxSamples:             getEnvInt("MAX_SAMPLES", DefaultMaxSamples),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFormat:     getEnvString("LOG_FORMAT", "text"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}
