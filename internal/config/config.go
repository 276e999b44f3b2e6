package config

import (
	"os"
	"strconv"
	"time"
	_ "time/tzdata"
)

// ServerConfig holds listener settings for one HTTP program.
type ServerConfig struct {
	Host        string
	Port        string
	MetricsHost string
	MetricsPort string
}

// Addr returns the host:port the application listens on.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// MetricsAddr returns the host:port of the metrics listener.
// It defaults to loopback so /metrics is not reachable from outside the host.
func (s ServerConfig) MetricsAddr() string {
	return s.MetricsHost + ":" + s.MetricsPort
}

// AppConfig is the centralized configuration struct for both programs.
// It is populated from environment variables.
type AppConfig struct {
	API             ServerConfig
	Form            ServerConfig
	MetricsEnabled  bool
	TimeZone        string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() *AppConfig {
	return &AppConfig{
		API: ServerConfig{
			Host:        getEnv("API_HOST", "0.0.0.0"),
			Port:        getEnv("API_PORT", "8000"),
			MetricsHost: getEnv("API_METRICS_HOST", "127.0.0.1"),
			MetricsPort: getEnv("API_METRICS_PORT", "9100"),
		},
		Form: ServerConfig{
			Host:        getEnv("FORM_HOST", "0.0.0.0"),
			Port:        getEnv("FORM_PORT", "8501"),
			MetricsHost: getEnv("FORM_METRICS_HOST", "127.0.0.1"),
			MetricsPort: getEnv("FORM_METRICS_PORT", "9101"),
		},
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
		TimeZone:        getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
