package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-predictor/internal/config"
	"github.com/ytget/image-predictor/internal/locale"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *locale.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	endpointEntry    *widget.Entry
	timeoutEntry     *widget.Entry
	previewSizeEntry *widget.Entry
	languageSelect   *widget.Select

	// language label -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were written to the preferences.
func NewSettingsDialog(settings *config.Settings, localization *locale.Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the dialog in one step
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *locale.Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(config.DefaultEndpointURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinTimeoutSeconds) + "-" + strconv.Itoa(config.MaxTimeoutSeconds))

	sd.previewSizeEntry = widget.NewEntry()
	sd.previewSizeEntry.SetPlaceHolder(strconv.Itoa(config.MinPreviewSize) + "-" + strconv.Itoa(config.MaxPreviewSize))

	sd.languageCodes = make(map[string]string)
	var languageLabels []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		languageLabels = append(languageLabels, label)
	}
	sort.Strings(languageLabels)
	sd.languageSelect = widget.NewSelect(languageLabels, nil)

	form := container.NewVBox(
		widget.NewLabel(t(locale.KeyEndpoint)+":"),
		sd.endpointEntry,

		widget.NewLabel(t(locale.KeyTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(t(locale.KeyPreviewSize)+":"),
		sd.previewSizeEntry,

		widget.NewSeparator(),

		widget.NewLabel(t(locale.KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(locale.KeySettings),
		t(locale.KeySave),
		t(locale.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.endpointEntry.SetText(sd.settings.GetEndpointURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))
	sd.previewSizeEntry.SetText(strconv.Itoa(sd.settings.GetPreviewSize()))

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(locale.KeySettings), sd.localization.GetText(locale.KeySettingsSaved), sd.window)
}

// apply writes the entered values; empty or non-numeric fields are skipped
func (sd *SettingsDialog) apply() {
	if endpoint := strings.TrimSpace(sd.endpointEntry.Text); endpoint != "" {
		sd.settings.SetEndpointURL(endpoint)
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeoutSeconds(seconds)
	}

	if size, err := strconv.Atoi(strings.TrimSpace(sd.previewSizeEntry.Text)); err == nil {
		sd.settings.SetPreviewSize(size)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
