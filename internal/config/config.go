package config

import (
	"fmt"
	"os"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	DBPath     string
	JWTSecret  string
}

// Load builds Config from environment with sensible defaults.
// JWT_SECRET has no default on purpose; Validate rejects an empty value so the
// signing key can never fall back to a literal baked into the binary.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "3000"),
		DBPath:     getEnv("DB_PATH", "library.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}
}

// Validate reports configuration that cannot be defaulted.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
