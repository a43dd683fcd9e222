package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// TracingConfig holds OpenTelemetry tracing settings.
// Exporter endpoints are read by the OTLP exporters directly from the standard OTEL_* variables.
type TracingConfig struct {
	Disabled    bool
	ServiceName string
	Protocol    string
	Sampler     string
	SamplerArg  string
}

// MetricsConfig holds Prometheus collector settings.
type MetricsConfig struct {
	Namespace string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	ServiceName string
	Timezone    string
	Log         LogConfig
	Tracing     TracingConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables after loading the given
// dotenv files (".env" when none are given). Missing files are ignored and
// variables already present in the environment take precedence.
func Load(files ...string) (*AppConfig, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	name := getEnv("APP_NAME", "gallery")
	return &AppConfig{
		ServiceName: name,
		Timezone:    getEnv("APP_TIMEZONE", "UTC"),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Tracing: TracingConfig{
			Disabled:    getEnvBool("OTEL_SDK_DISABLED", true),
			ServiceName: getEnv("OTEL_SERVICE_NAME", name),
			Protocol:    getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
			Sampler:     getEnv("OTEL_TRACES_SAMPLER", "parentbased_traceidratio"),
			SamplerArg:  getEnv("OTEL_TRACES_SAMPLER_ARG", "1.0"),
		},
		Metrics: MetricsConfig{
			Namespace: getEnv("METRICS_NAMESPACE", "gallery"),
		},
	}, nil
}

// Location resolves Timezone, falling back to UTC for unknown zones.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
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
