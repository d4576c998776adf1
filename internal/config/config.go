package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database     DatabaseConfig
	LiveKit      LiveKitConfig
	Services     ServicesConfig
	Provisioning ProvisioningConfig
	Dispatcher   DispatcherConfig
	Server       ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// LiveKitConfig holds LiveKit credentials for room access tokens
type LiveKitConfig struct {
	APIKey    string
	APISecret string
	TokenTTL  time.Duration
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	OpenAIAPIKey string
	WebAppURI    string
}

// ProvisioningConfig holds settings for the external telephony CLI
type ProvisioningConfig struct {
	Binary  string        // lk binary name or path
	Timeout time.Duration // ceiling for a single invocation
}

// DispatcherConfig holds campaign call dispatcher settings
type DispatcherConfig struct {
	MaxConcurrentCalls int // admission gate for simultaneous call attempts
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// LiveKit configuration
	if cfg.LiveKit.APIKey, err = requireEnv("LIVEKIT_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.LiveKit.APISecret, err = requireEnv("LIVEKIT_API_SECRET"); err != nil {
		return nil, err
	}
	tokenTTL := getEnvWithDefault("LIVEKIT_TOKEN_TTL", "6h")
	cfg.LiveKit.TokenTTL, err = time.ParseDuration(tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LIVEKIT_TOKEN_TTL: %w", err)
	}

	// Services configuration
	if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	// Provisioning configuration
	cfg.Provisioning.Binary = getEnvWithDefault("LK_BINARY", "lk")
	provisioningTimeout := getEnvWithDefault("LK_TIMEOUT", "120s")
	cfg.Provisioning.Timeout, err = time.ParseDuration(provisioningTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LK_TIMEOUT: %w", err)
	}

	// Dispatcher configuration
	maxConcurrentCalls := getEnvWithDefault("MAX_CONCURRENT_CALLS", "3")
	cfg.Dispatcher.MaxConcurrentCalls, err = strconv.Atoi(maxConcurrentCalls)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MAX_CONCURRENT_CALLS: %w", err)
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
