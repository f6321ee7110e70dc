package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the immutable process configuration, resolved from the
// environment once at startup.
type Config struct {
	// HTTP server
	Port           string
	AllowedOrigins []string

	// MongoDB
	MongoURI string
	MongoDB  string

	// External category-prediction service
	ClassifierURL string

	// Auth
	JWTSecret string
}

// Load reads the configuration from the environment. Call Validate before
// using the result.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "5000"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		MongoURI: getEnv("MONGO_URI", ""),
		MongoDB:  getEnv("MONGO_DB", "expense-tracker"),

		ClassifierURL: getEnv("CLASSIFIER_URL", "http://127.0.0.1:5000"),

		JWTSecret: getEnv("JWT_SECRET", ""),
	}
}

// Validate checks the configuration and reports every problem at once so
// a misconfigured deployment fails on first boot, not mid-request.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.MongoURI == "" {
		problems = append(problems, "MONGO_URI is required")
	}
	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required")
	}
	if len(c.AllowedOrigins) == 0 {
		problems = append(problems, "ALLOWED_ORIGINS must list at least one origin")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
