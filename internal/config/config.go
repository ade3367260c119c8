package config

import "os"

// Config holds process configuration, read from the environment.
type Config struct {
	Port     string
	DBPath   string
	LogLevel string
}

// Load reads configuration from environment variables, applying defaults for
// anything unset. It never fails; every setting has a usable default.
func Load() *Config {
	return &Config{
		Port:     getEnvOrDefault("SHOPLIST_PORT", "8080"),
		DBPath:   getEnvOrDefault("SHOPLIST_DB_PATH", "shoplist.db"),
		LogLevel: getEnvOrDefault("SHOPLIST_LOG_LEVEL", "info"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
