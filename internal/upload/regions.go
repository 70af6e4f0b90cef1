package upload

// Visibility is a display region that can be shown or hidden
type Visibility interface {
	Show()
	Hide()
	Visible() bool
}

// TextRegion is a region displaying a single text
type TextRegion interface {
	Visibility
	SetText(text string)
}

// PreviewRegion displays an image given as a data URL
type PreviewRegion interface {
	Visibility
	SetDataURL(dataURL string) error
}

// Regions groups the display sinks updated by the controller
type Regions struct {
	Summary TextRegion    // result area with the best-prediction sentence
	Details TextRegion    // raw response panel, hidden by default
	Preview PreviewRegion // image preview
	Spinner Visibility    // loading indicator while the request is outstanding
	Error   TextRegion    // error banner
}

// Messages provides the localized user-facing texts
type Messages interface {
	GetText(key string) string
	Format(key string, args ...any) string
}
