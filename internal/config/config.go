package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when an environment value cannot be used
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration
type Config struct {
	Port          int    `validate:"min=1,max=65535"`
	LogLevel      string `validate:"oneof=debug info warn warning error"`
	LogFormat     string `validate:"oneof=json text"`
	Environment   string `validate:"required"`
	ServiceName   string `validate:"required"`
	Version       string `validate:"required"`
	SimDays       int    `validate:"min=1,max=3650"`
	InventoryFile string `validate:"omitempty,file"` // empty means the default stock

	// HTTP security. An empty APIKey disables key checks and a RateLimit
	// of 0 disables limiting (requests per client per window otherwise).
	APIKey         string
	TrustedProxies []string
	RateLimit      int `validate:"min=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:     strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:   getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:   getEnv(EnvServiceName, DefaultServiceName),
		Version:       getEnv(EnvVersion, DefaultVersion),
		InventoryFile: getEnv(EnvInventoryFile, ""),
		APIKey:        getEnv(EnvAPIKey, ""),
	}

	if proxies := getEnv(EnvTrustedProxies, ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	var err error
	if cfg.Port, err = getEnvAsInt(EnvPort, DefaultPort); err != nil {
		return nil, err
	}
	if cfg.SimDays, err = getEnvAsInt(EnvSimDays, DefaultSimDays); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getEnvAsInt(EnvRateLimit, DefaultRateLimit); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to defaultValue when unset
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, value)
	}
	return n, nil
}
