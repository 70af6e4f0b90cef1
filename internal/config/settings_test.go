package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, DefaultOptions())

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestEndpointURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, DefaultOptions())

	// Test default value
	if url := settings.GetEndpointURL(); url != DefaultEndpointURL {
		t.Errorf("Expected default endpoint %s, got %s", DefaultEndpointURL, url)
	}

	// Test setting custom value
	settings.SetEndpointURL("http://predictor:9000")
	if url := settings.GetEndpointURL(); url != "http://predictor:9000" {
		t.Errorf("Expected endpoint http://predictor:9000, got %s", url)
	}

	// Test empty value defaults back
	settings.SetEndpointURL("")
	if url := settings.GetEndpointURL(); url != DefaultEndpointURL {
		t.Errorf("Empty endpoint should default to %s, got %s", DefaultEndpointURL, url)
	}
}

func TestEndpointURLFromEnvDefaults(t *testing.T) {
	app := test.NewApp()
	defaults := DefaultOptions()
	defaults.EndpointURL = "http://from-env:1234"
	settings := NewSettings(app, defaults)

	if url := settings.GetEndpointURL(); url != "http://from-env:1234" {
		t.Errorf("Expected env default endpoint, got %s", url)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, DefaultOptions())

	// Test default value
	if seconds := settings.GetRequestTimeoutSeconds(); seconds != 30 {
		t.Errorf("Expected default timeout 30, got %d", seconds)
	}

	settings.SetRequestTimeoutSeconds(5)
	if seconds := settings.GetRequestTimeoutSeconds(); seconds != 5 {
		t.Errorf("Expected timeout 5, got %d", seconds)
	}

	// Test boundary values
	settings.SetRequestTimeoutSeconds(0) // Should be clamped to 1
	if settings.GetRequestTimeoutSeconds() != MinTimeoutSeconds {
		t.Error("Timeout should be clamped to minimum 1")
	}

	settings.SetRequestTimeoutSeconds(1000) // Should be clamped to 300
	if settings.GetRequestTimeoutSeconds() != MaxTimeoutSeconds {
		t.Error("Timeout should be clamped to maximum 300")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, DefaultOptions())

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}
}

func TestPreviewSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, DefaultOptions())

	if size := settings.GetPreviewSize(); size != DefaultPreviewSize {
		t.Errorf("Expected default preview size %d, got %d", DefaultPreviewSize, size)
	}

	settings.SetPreviewSize(10)
	if settings.GetPreviewSize() != MinPreviewSize {
		t.Error("Preview size should be clamped to minimum 64")
	}

	settings.SetPreviewSize(5000)
	if settings.GetPreviewSize() != MaxPreviewSize {
		t.Error("Preview size should be clamped to maximum 1024")
	}
}

func TestLastDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, DefaultOptions())

	if dir := settings.GetLastDirectory(); dir != "" {
		t.Errorf("Expected empty last directory, got %s", dir)
	}

	settings.SetLastDirectory("/home/user/Pictures")
	if dir := settings.GetLastDirectory(); dir != "/home/user/Pictures" {
		t.Errorf("Expected /home/user/Pictures, got %s", dir)
	}
}

func TestOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, DefaultOptions())
	settings.SetRequestTimeoutSeconds(12)
	settings.SetLanguage("en")

	opts := settings.Options()
	if opts.Timeout != 12*time.Second {
		t.Errorf("Expected timeout 12s, got %v", opts.Timeout)
	}
	if opts.Language != "en" {
		t.Errorf("Expected language en, got %s", opts.Language)
	}
	if opts.EndpointURL != DefaultEndpointURL {
		t.Errorf("Expected endpoint %s, got %s", DefaultEndpointURL, opts.EndpointURL)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, DefaultOptions())

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "de", "en"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
