package locale

// Package locale holds the user-facing texts of the application

import (
	"fmt"
	"sync"
)

// Localization manages UI text translations. It is safe for concurrent use.
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Language codes
const (
	LanguageGerman  = "de"
	LanguageEnglish = "en"
	LanguageSystem  = "system"

	DefaultLanguage = LanguageGerman
)

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyChooseFile        = "choose_file"
	KeyNoFileChosen      = "no_file_chosen"
	KeyPredict           = "predict"
	KeyShowDetails       = "show_details"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyEndpoint          = "endpoint"
	KeyTimeout           = "timeout"
	KeyPreviewSize       = "preview_size"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeySelectFileFirst   = "select_file_first"
	KeySummaryFormat     = "summary_format"
	KeyErrorPrefix       = "error_prefix"
	KeyServerError       = "server_error"
	KeyInvalidJSON       = "invalid_json"
	KeyInvalidStructure  = "invalid_structure"
	KeyNetworkError      = "network_error"
	KeyUnexpectedError   = "unexpected_error"
	KeyStatusReady       = "status_ready"
	KeyStatusSending     = "status_sending"
	KeyStatusDone        = "status_done"
	KeyStatusFailed      = "status_failed"
	KeyEndpointReachable = "endpoint_reachable"
	KeyEndpointDown      = "endpoint_down"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem || lang == "" {
		lang = DefaultLanguage
	}

	if _, exists := l.texts[lang]; exists {
		l.mu.Lock()
		l.currentLanguage = lang
		l.mu.Unlock()
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.GetCurrentLanguage()]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to German
	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key used as a fmt format string
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LanguageGerman:  "Deutsch",
		LanguageEnglish: "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// German texts
	l.texts[LanguageGerman] = map[string]string{
		KeyAppTitle:          "Bildklassifikation",
		KeyChooseFile:        "Datei auswählen",
		KeyNoFileChosen:      "Keine Datei ausgewählt",
		KeyPredict:           "Vorhersagen",
		KeyShowDetails:       "Details anzeigen/verbergen",
		KeySettings:          "Einstellungen",
		KeyFile:              "Datei",
		KeyLanguage:          "Sprache",
		KeyEndpoint:          "Server-URL",
		KeyTimeout:           "Zeitlimit (Sekunden)",
		KeyPreviewSize:       "Vorschaugröße (Pixel)",
		KeySave:              "Speichern",
		KeyCancel:            "Abbrechen",
		KeySettingsSaved:     "Einstellungen gespeichert!",
		KeySelectFileFirst:   "Bitte wähle zuerst eine Datei aus.",
		KeySummaryFormat:     "Beim Bild handelt es sich um ein(e) %s (Wahrscheinlichkeit: %s).",
		KeyErrorPrefix:       "Ein Fehler ist aufgetreten: %s",
		KeyServerError:       "Serverfehler: %d %s - %s",
		KeyInvalidJSON:       "Ungültige JSON-Antwort vom Server erhalten: %s",
		KeyInvalidStructure:  "Ungültige oder leere Antwortstruktur vom Server erhalten: %s",
		KeyNetworkError:      "Netzwerkfehler: %s",
		KeyUnexpectedError:   "Unerwarteter Fehler: %s",
		KeyStatusReady:       "Bereit",
		KeyStatusSending:     "Bild wird gesendet…",
		KeyStatusDone:        "Fertig (%s)",
		KeyStatusFailed:      "Fehlgeschlagen",
		KeyEndpointReachable: "Server erreichbar: %s",
		KeyEndpointDown:      "Server nicht erreichbar: %s",
	}

	// English texts
	l.texts[LanguageEnglish] = map[string]string{
		KeyAppTitle:          "Image Classification",
		KeyChooseFile:        "Choose file",
		KeyNoFileChosen:      "No file chosen",
		KeyPredict:           "Predict",
		KeyShowDetails:       "Show/hide details",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyEndpoint:          "Server URL",
		KeyTimeout:           "Timeout (seconds)",
		KeyPreviewSize:       "Preview size (pixels)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeySelectFileFirst:   "Please select a file first.",
		KeySummaryFormat:     "The image shows a(n) %s (probability: %s).",
		KeyErrorPrefix:       "An error occurred: %s",
		KeyServerError:       "Server error: %d %s - %s",
		KeyInvalidJSON:       "Received an invalid JSON response from the server: %s",
		KeyInvalidStructure:  "Received an invalid or empty response structure from the server: %s",
		KeyNetworkError:      "Network error: %s",
		KeyUnexpectedError:   "Unexpected error: %s",
		KeyStatusReady:       "Ready",
		KeyStatusSending:     "Sending image…",
		KeyStatusDone:        "Done (%s)",
		KeyStatusFailed:      "Failed",
		KeyEndpointReachable: "Server reachable: %s",
		KeyEndpointDown:      "Server unreachable: %s",
	}
}
