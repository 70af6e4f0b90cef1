package ui

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-predictor/internal/config"
	"github.com/ytget/image-predictor/internal/locale"
	"github.com/ytget/image-predictor/internal/logging"
	"github.com/ytget/image-predictor/internal/model"
	"github.com/ytget/image-predictor/internal/platform"
	"github.com/ytget/image-predictor/internal/predict"
	"github.com/ytget/image-predictor/internal/preview"
	"github.com/ytget/image-predictor/internal/upload"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *locale.Localization
	logger       *slog.Logger

	client     *predict.Client
	controller *upload.Controller
	regions    *regionSet

	// selected is only touched on the UI goroutine
	selected *model.SelectedFile

	chooseBtn  *widget.Button
	fileLabel  *widget.Label
	predictBtn *widget.Button
	detailsBtn *widget.Button
	status     binding.String

	// statusMu orders status writes; updates counts submission updates so a
	// late ping result does not replace a submission's status
	statusMu sync.Mutex
	updates  uint64
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, opts config.Options) *RootUI {
	settings := config.NewSettings(app, opts)

	localization := locale.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logging.GetLogger(),
		status:       binding.NewString(),
	}

	window.SetTitle(localization.GetText(locale.KeyAppTitle))

	ui.setupUI()
	ui.buildController()

	log.Printf("RootUI initialized: endpoint=%s language=%s", ui.client.Endpoint(), localization.GetCurrentLanguage())

	ui.pingEndpoint()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	t := ui.localization.GetText

	ui.createMenu()

	ui.chooseBtn = widget.NewButtonWithIcon(t(locale.KeyChooseFile), theme.FolderOpenIcon(), ui.onChooseFile)

	ui.fileLabel = widget.NewLabel(t(locale.KeyNoFileChosen))
	ui.fileLabel.Truncation = fyne.TextTruncateEllipsis

	ui.predictBtn = widget.NewButton(t(locale.KeyPredict), ui.onPredictClick)
	ui.predictBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn, ui.chooseBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn, ui.chooseBtn)
		ui.window.SetIcon(logo)
	}
	topPanel := container.NewBorder(nil, nil, left, ui.predictBtn, ui.fileLabel)

	spinner := widget.NewProgressBarInfinite()

	errLabel := widget.NewLabel("")
	errLabel.Importance = widget.DangerImportance
	errLabel.Wrapping = fyne.TextWrapWord

	summaryLabel := widget.NewLabel("")
	summaryLabel.Importance = widget.SuccessImportance
	summaryLabel.Wrapping = fyne.TextWrapWord
	summaryLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.detailsBtn = widget.NewButton(IconDetails+" "+t(locale.KeyShowDetails), ui.onToggleDetails)
	ui.detailsBtn.Importance = widget.LowImportance
	summaryBox := container.NewVBox(summaryLabel, container.NewHBox(ui.detailsBtn))

	detailsLabel := widget.NewLabel("")
	detailsLabel.TextStyle = fyne.TextStyle{Monospace: true}
	detailsScroll := container.NewScroll(detailsLabel)
	detailsScroll.SetMinSize(fyne.NewSize(DetailsMinWidth, DetailsMinHeight))

	previewImage := canvas.NewImageFromImage(nil)
	previewImage.FillMode = canvas.ImageFillContain

	ui.regions = &regionSet{
		summary: newLabelRegion(summaryLabel, summaryBox),
		details: newLabelRegion(detailsLabel, detailsScroll),
		preview: newImageRegion(previewImage, ui.settings.GetPreviewSize),
		spinner: newSpinnerRegion(spinner),
		err:     newLabelRegion(errLabel, nil),
	}

	body := container.NewVBox(
		spinner,
		errLabel,
		summaryBox,
		detailsScroll,
		container.NewCenter(previewImage),
	)

	ui.status.Set(t(locale.KeyStatusReady))
	statusLabel := widget.NewLabelWithData(ui.status)
	statusLabel.Truncation = fyne.TextTruncateEllipsis

	content := container.NewBorder(
		container.NewVBox(topPanel, widget.NewSeparator()),
		container.NewVBox(widget.NewSeparator(), statusLabel),
		nil, nil,
		container.NewVScroll(body),
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// buildController (re)creates the client and controller from the current settings
func (ui *RootUI) buildController() {
	opts := ui.settings.Options()
	ui.client = predict.NewClient(opts.EndpointURL, opts.Timeout)
	ui.controller = upload.NewController(ui.regions.bind(), ui.client, preview.NewFileLoader(), ui.localization, ui.logger)
	ui.controller.SetUpdateCallback(ui.onSubmissionUpdate)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(locale.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(locale.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(locale.KeyFile), settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(locale.KeyAppTitle))
	ui.chooseBtn.SetText(t(locale.KeyChooseFile))
	ui.predictBtn.SetText(t(locale.KeyPredict))
	ui.detailsBtn.SetText(IconDetails + " " + t(locale.KeyShowDetails))
	if ui.selected == nil {
		ui.fileLabel.SetText(t(locale.KeyNoFileChosen))
	}
	ui.status.Set(t(locale.KeyStatusReady))
}

// onChooseFile opens the image picker in the last used directory
func (ui *RootUI) onChooseFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to read %s: %w", reader.URI().Name(), err), ui.window)
			return
		}
		ui.selectFile(reader.URI().Name(), reader.URI().Path(), data)
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter(platform.ImageExtensions))
	if location := ui.startLocation(); location != nil {
		fd.SetLocation(location)
	}
	fd.Show()
}

func (ui *RootUI) startLocation() fyne.ListableURI {
	dir := ui.settings.GetLastDirectory()
	if dir == "" || !platform.IsDirectory(dir) {
		pictures, err := platform.GetHomePicturesDir()
		if err != nil {
			return nil
		}
		dir = pictures
	}

	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		log.Printf("Cannot open %s in file dialog: %v", dir, err)
		return nil
	}
	return lister
}

// selectFile replaces the current selection. path may be empty.
func (ui *RootUI) selectFile(name, path string, data []byte) {
	ui.selected = platform.NewSelectedFile(name, data)
	ui.fileLabel.SetText(ui.selected.Name)
	if path != "" {
		ui.settings.SetLastDirectory(filepath.Dir(path))
	}
	log.Printf("File selected: name=%s type=%s size=%d", ui.selected.Name, ui.selected.ContentType, ui.selected.Size())
}

// onPredictClick starts a submission without blocking the window
func (ui *RootUI) onPredictClick() {
	go ui.submit(context.Background(), ui.controller, ui.selected)
}

// submit runs one submission on the calling goroutine. controller and file are
// captured on the UI goroutine.
func (ui *RootUI) submit(ctx context.Context, controller *upload.Controller, file *model.SelectedFile) *model.Submission {
	return controller.Submit(ctx, file)
}

func (ui *RootUI) onToggleDetails() {
	ui.controller.ToggleDetails()
}

// onSubmissionUpdate mirrors the submission state in the status line
func (ui *RootUI) onSubmissionUpdate(sub *model.Submission) {
	log.Printf("Submission update received: id=%s status=%s", sub.ID, sub.Status)

	var text string
	switch sub.Status {
	case model.SubmissionStatusSending, model.SubmissionStatusParsing:
		text = ui.localization.GetText(locale.KeyStatusSending)
	case model.SubmissionStatusRendered:
		text = ui.localization.Format(locale.KeyStatusDone, sub.Elapsed().Round(time.Millisecond))
	case model.SubmissionStatusError:
		text = ui.localization.GetText(locale.KeyStatusFailed)
	default:
		return
	}

	ui.statusMu.Lock()
	defer ui.statusMu.Unlock()
	ui.updates++
	ui.status.Set(text)
}

// pingEndpoint reports the reachability of the endpoint in the status line
func (ui *RootUI) pingEndpoint() {
	ui.statusMu.Lock()
	since := ui.updates
	ui.statusMu.Unlock()

	go ui.reportPing(ui.client, since)
}

// reportPing pings the endpoint and shows the outcome unless a submission
// update arrived after since
func (ui *RootUI) reportPing(client *predict.Client, since uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), PingTimeout)
	defer cancel()

	text := ui.localization.Format(locale.KeyEndpointReachable, client.Endpoint())
	if _, err := client.Ping(ctx); err != nil {
		ui.logger.WarnContext(ctx, "endpoint unreachable",
			slog.String("endpoint", client.Endpoint()),
			slog.Any("error", err),
		)
		text = ui.localization.Format(locale.KeyEndpointDown, client.Endpoint())
	}

	ui.statusMu.Lock()
	defer ui.statusMu.Unlock()
	if ui.updates != since {
		log.Printf("Ping result for %s dropped: submission status is newer", client.Endpoint())
		return
	}
	ui.status.Set(text)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.buildController()
	ui.refreshUITexts()
	ui.createMenu()
	ui.pingEndpoint()
}
