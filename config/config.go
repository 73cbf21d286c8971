package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Credentials holds the Entra application credentials used for the
// client-credential exchange against the token endpoint. All three are
// required for directory enrichment, but their absence is a runtime
// error at token acquisition time, not at startup: sovereign-cloud and
// realm lookups work without them.
type Credentials struct {
	ClientID     string
	ClientSecret string
	HomeTenantID string
}

// Complete reports whether all credential fields are present.
func (c Credentials) Complete() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.HomeTenantID != ""
}

// Config holds the application configuration
type Config struct {
	LoginBaseURL string        // Base URL of the login host (discovery, realm, token endpoints)
	GraphBaseURL string        // Base URL of the Microsoft Graph host
	Port         string        // Service port
	HTTPTimeout  time.Duration // Timeout for outbound upstream calls
	Credentials  Credentials   // Entra application credentials (may be incomplete)
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	config := &Config{
		LoginBaseURL: getEnv("LOGIN_BASE_URL", "https://login.microsoftonline.com"),
		GraphBaseURL: getEnv("GRAPH_BASE_URL", "https://graph.microsoft.com"),
		Port:         getEnv("PORT", "8889"),
		HTTPTimeout:  10 * time.Second, // Default 10 seconds
		Credentials: Credentials{
			ClientID:     getEnv("ENTRA_CLIENT_ID", ""),
			ClientSecret: getEnv("ENTRA_CLIENT_SECRET", ""),
			HomeTenantID: getEnv("ENTRA_HOME_TENANT_ID", ""),
		},
	}

	// Parse HTTP_TIMEOUT if provided
	if timeoutStr := os.Getenv("HTTP_TIMEOUT"); timeoutStr != "" {
		duration, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT format: %w", err)
		}
		config.HTTPTimeout = duration
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LoginBaseURL == "" {
		return fmt.Errorf("LOGIN_BASE_URL cannot be empty")
	}

	if c.GraphBaseURL == "" {
		return fmt.Errorf("GRAPH_BASE_URL cannot be empty")
	}

	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
