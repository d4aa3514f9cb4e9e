package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StorageConfig represents storage configuration loaded from YAML.
type StorageConfig struct {
	Storage struct {
		// Backend selects the persistence adapter: "postgres" or "sqlite".
		Backend string `yaml:"backend"`
		// DSNEnv names the environment variable holding the connection string.
		// The DSN itself never lives in the config file.
		DSNEnv string `yaml:"dsn_env"`
		Pool   struct {
			MaxOpenConns    int    `yaml:"max_open_conns"`
			MaxIdleConns    int    `yaml:"max_idle_conns"`
			ConnMaxLifetime string `yaml:"conn_max_lifetime"`
			ConnMaxIdleTime string `yaml:"conn_max_idle_time"`
		} `yaml:"pool"`
	} `yaml:"storage"`
	Pagination struct {
		DefaultLimit int `yaml:"default_limit"`
		MaxLimit     int `yaml:"max_limit"`
	} `yaml:"pagination"`
}

// LoadStorageConfig loads storage configuration from a YAML file.
// The path parameter is expected to come from a trusted source (command-line argument or hardcoded default).
func LoadStorageConfig(path string) (*StorageConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config StorageConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateStorageConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// validateStorageConfig validates the loaded configuration.
func validateStorageConfig(config *StorageConfig) error {
	switch config.Storage.Backend {
	case "postgres", "sqlite":
	case "":
		return fmt.Errorf("storage backend is required")
	default:
		return fmt.Errorf("unsupported storage backend: %s", config.Storage.Backend)
	}

	if config.Storage.DSNEnv == "" {
		return fmt.Errorf("dsn_env is required")
	}

	if config.Storage.Pool.MaxOpenConns < 0 {
		return fmt.Errorf("max_open_conns must not be negative")
	}
	if config.Storage.Pool.MaxIdleConns < 0 {
		return fmt.Errorf("max_idle_conns must not be negative")
	}

	if config.Pagination.DefaultLimit < 0 || config.Pagination.MaxLimit < 0 {
		return fmt.Errorf("pagination limits must not be negative")
	}
	if config.Pagination.MaxLimit > 0 && config.Pagination.DefaultLimit > config.Pagination.MaxLimit {
		return fmt.Errorf("default_limit must not exceed max_limit")
	}

	return nil
}
