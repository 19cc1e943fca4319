// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/moneyflow-app/backend/internal/auth"
	"golang.org/x/exp/slices"
)

type Config struct {
	GinMode   string
	LogFormat string // "human" or "json". Empty selects by GinMode

	// HTTP server
	APIURL           string
	Port             string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Database. DatabaseURL selects PostgreSQL, SQLitePath is used otherwise
	DatabaseURL string
	SQLitePath  string

	// Tokens
	JWTSecret    string
	JWTExpiresIn time.Duration
}

// Load reads the configuration from the environment. Variables
// from a .env file in the working directory are loaded first,
// variables already set in the environment take precedence.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GinMode:   getEnv("GIN_MODE", gin.ReleaseMode),
		LogFormat: os.Getenv("LOG_FORMAT"),

		APIURL:           os.Getenv("API_URL"),
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/moneyflow.db"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: getEnvDuration("JWT_EXPIRES_IN", auth.DefaultExpiry),
	}
}

// Validate checks the configuration and returns all problems at once.
func (c Config) Validate() error {
	var errs []error

	if !slices.Contains([]string{gin.DebugMode, gin.ReleaseMode, gin.TestMode}, c.GinMode) {
		errs = append(errs, fmt.Errorf("invalid GIN_MODE '%s': must be one of debug, release, test", c.GinMode))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid LOG_FORMAT '%s': must be human or json", c.LogFormat))
	}

	if c.APIURL == "" {
		errs = append(errs, errors.New("API_URL must be set"))
	} else if u, err := url.Parse(c.APIURL); err != nil {
		errs = append(errs, fmt.Errorf("invalid API_URL '%s': %w", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Errorf("invalid API_URL scheme '%s': must be http or https", u.Scheme))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("invalid PORT '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %d: must be between 1 and 65535", port))
	}

	if c.DatabaseURL == "" && c.SQLitePath == "" {
		errs = append(errs, errors.New("SQLITE_PATH must not be empty when DATABASE_URL is not set"))
	}

	// Outside of release mode, a random secret is used when none is set
	if c.JWTSecret == "" && c.GinMode == gin.ReleaseMode {
		errs = append(errs, errors.New("JWT_SECRET must be set in release mode"))
	}

	if c.JWTExpiresIn <= 0 {
		errs = append(errs, fmt.Errorf("invalid JWT_EXPIRES_IN %v: must be positive", c.JWTExpiresIn))
	}

	return errors.Join(errs...)
}

// URL returns the parsed API URL. It must only be called after Validate.
func (c Config) URL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

// HumanLogs reports whether logs are written in the human readable format.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == gin.DebugMode
	}

	return c.LogFormat == "human"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration parses Go durations and whole days like "7d".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if days, ok := strings.CutSuffix(value, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil {
			return time.Duration(n) * 24 * time.Hour
		}
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
