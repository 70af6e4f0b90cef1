package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ytget/image-predictor/internal/locale"
)

// Environment variables
const (
	EnvEndpoint    = "PREDICT_ENDPOINT"
	EnvTimeout     = "PREDICT_TIMEOUT"
	EnvLanguage    = "PREDICT_LANGUAGE"
	EnvPreviewSize = "PREDICT_PREVIEW_SIZE"
	EnvLogLevel    = "PREDICT_LOG_LEVEL"
)

// Default values
const (
	DefaultEndpointURL = "http://localhost:8080"
	DefaultTimeout     = 30 * time.Second
	DefaultLanguage    = locale.DefaultLanguage
	DefaultPreviewSize = 256
	DefaultLogLevel    = "info"
)

// Options is the resolved configuration shared by the GUI and the CLI
type Options struct {
	EndpointURL string
	Timeout     time.Duration
	Language    string
	PreviewSize int
	LogLevel    string
}

// DefaultOptions returns the built-in defaults
func DefaultOptions() Options {
	return Options{
		EndpointURL: DefaultEndpointURL,
		Timeout:     DefaultTimeout,
		Language:    DefaultLanguage,
		PreviewSize: DefaultPreviewSize,
		LogLevel:    DefaultLogLevel,
	}
}

// LoadEnv loads a .env file from the working directory if one exists
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}
}

// FromEnv returns the defaults overridden by PREDICT_* environment variables.
// Invalid numbers are ignored.
func FromEnv() Options {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Options {
	opts := DefaultOptions()

	if v, ok := lookup(EnvEndpoint); ok && strings.TrimSpace(v) != "" {
		opts.EndpointURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvTimeout); ok {
		if seconds, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && seconds > 0 {
			opts.Timeout = secondsToDuration(clamp(seconds, MinTimeoutSeconds, MaxTimeoutSeconds))
		}
	}
	if v, ok := lookup(EnvLanguage); ok && strings.TrimSpace(v) != "" {
		opts.Language = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvPreviewSize); ok {
		if size, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && size > 0 {
			opts.PreviewSize = clamp(size, MinPreviewSize, MaxPreviewSize)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		opts.LogLevel = strings.TrimSpace(v)
	}

	return opts
}

func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
