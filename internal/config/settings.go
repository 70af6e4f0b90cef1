package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/image-predictor/internal/locale"
)

// Settings keys for Fyne preferences
const (
	KeyEndpointURL    = "endpoint_url"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyLanguage       = "app_language"
	KeyPreviewSize    = "preview_size"
	KeyLastDirectory  = "last_directory"
)

// Limits
const (
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 300
	MinPreviewSize    = 64
	MaxPreviewSize    = 1024
)

// Settings manages application configuration. Values not yet stored in the
// preferences fall back to the defaults in Options (env or built-in).
type Settings struct {
	app      fyne.App
	defaults Options
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, defaults Options) *Settings {
	return &Settings{app: app, defaults: defaults}
}

// GetEndpointURL returns the base URL of the prediction service
func (s *Settings) GetEndpointURL() string {
	url := s.app.Preferences().String(KeyEndpointURL)
	if url == "" {
		s.SetEndpointURL(s.defaults.EndpointURL)
		return s.defaults.EndpointURL
	}
	return url
}

// SetEndpointURL sets the base URL of the prediction service
func (s *Settings) SetEndpointURL(url string) {
	if url == "" {
		url = s.defaults.EndpointURL
	}
	s.app.Preferences().SetString(KeyEndpointURL, url)
}

// GetRequestTimeoutSeconds returns the request timeout in seconds
func (s *Settings) GetRequestTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		seconds := int(s.defaults.Timeout.Seconds())
		s.SetRequestTimeoutSeconds(seconds)
		return clamp(seconds, MinTimeoutSeconds, MaxTimeoutSeconds)
	}
	return value
}

// SetRequestTimeoutSeconds sets the request timeout, clamped to 1..300 seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyRequestTimeout, clamp(seconds, MinTimeoutSeconds, MaxTimeoutSeconds))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(s.defaults.Language)
		return s.defaults.Language
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetPreviewSize returns the maximum edge length of the image preview in pixels
func (s *Settings) GetPreviewSize() int {
	value := s.app.Preferences().Int(KeyPreviewSize)
	if value <= 0 {
		s.SetPreviewSize(s.defaults.PreviewSize)
		return clamp(s.defaults.PreviewSize, MinPreviewSize, MaxPreviewSize)
	}
	return value
}

// SetPreviewSize sets the preview size, clamped to 64..1024 pixels
func (s *Settings) SetPreviewSize(size int) {
	s.app.Preferences().SetInt(KeyPreviewSize, clamp(size, MinPreviewSize, MaxPreviewSize))
}

// GetLastDirectory returns the directory of the last chosen file, or ""
func (s *Settings) GetLastDirectory() string {
	return s.app.Preferences().String(KeyLastDirectory)
}

// SetLastDirectory remembers the directory of the last chosen file
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		locale.LanguageSystem:  "System Default",
		locale.LanguageGerman:  "Deutsch",
		locale.LanguageEnglish: "English",
	}
}

// Options returns the current settings as plain options
func (s *Settings) Options() Options {
	return Options{
		EndpointURL: s.GetEndpointURL(),
		Timeout:     secondsToDuration(s.GetRequestTimeoutSeconds()),
		Language:    s.GetLanguage(),
		PreviewSize: s.GetPreviewSize(),
		LogLevel:    s.defaults.LogLevel,
	}
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
