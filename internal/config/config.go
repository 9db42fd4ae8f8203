// Package config loads runtime settings from the environment.
package config

import "os"

// Defaults for the output roots. The fallback root is used when the
// requested root rejects a probe write.
const (
	DefaultOutputRoot   = "./umx-doc-pack"
	DefaultFallbackRoot = "/tmp/umx-tools/umx-doc-pack"
)

// Config holds the application configuration.
type Config struct {
	OutputRoot   string // requested output directory root
	FallbackRoot string // fallback root when OutputRoot is not writable
	LogLevel     string // debug, info, warn, error
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() *Config {
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	return &Config{
		OutputRoot:   getEnvOrDefault("UMX_OUTPUT", DefaultOutputRoot),
		FallbackRoot: getEnvOrDefault("UMX_FALLBACK_OUTPUT", DefaultFallbackRoot),
		LogLevel:     logLevel,
	}
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
