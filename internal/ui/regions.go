package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-predictor/internal/preview"
	"github.com/ytget/image-predictor/internal/upload"
)

// visibility tracks the shown state itself so it can be queried from the
// submission goroutine; widget changes are applied through fyne.Do.
type visibility struct {
	mu      sync.Mutex
	visible bool
	object  fyne.CanvasObject
}

// attach binds the region to its canvas object, initially hidden
func (v *visibility) attach(object fyne.CanvasObject) {
	v.object = object
	object.Hide()
}

func (v *visibility) Show() { v.set(true) }

func (v *visibility) Hide() { v.set(false) }

func (v *visibility) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

func (v *visibility) set(visible bool) {
	v.mu.Lock()
	v.visible = visible
	v.mu.Unlock()

	fyne.Do(func() {
		if visible {
			v.object.Show()
		} else {
			v.object.Hide()
		}
	})
}

// labelRegion shows text in a label; object is what gets shown or hidden,
// which may be a container around the label
type labelRegion struct {
	visibility
	label *widget.Label

	textMu sync.Mutex
	text   string
}

func newLabelRegion(label *widget.Label, object fyne.CanvasObject) *labelRegion {
	if object == nil {
		object = label
	}
	r := &labelRegion{label: label}
	r.attach(object)
	return r
}

func (r *labelRegion) SetText(text string) {
	r.textMu.Lock()
	r.text = text
	r.textMu.Unlock()

	fyne.Do(func() {
		r.label.SetText(text)
	})
}

// Text returns the last text set
func (r *labelRegion) Text() string {
	r.textMu.Lock()
	defer r.textMu.Unlock()
	return r.text
}

// imageRegion renders a data URL as a thumbnail
type imageRegion struct {
	visibility
	image   *canvas.Image
	maxSize func() int
}

func newImageRegion(image *canvas.Image, maxSize func() int) *imageRegion {
	r := &imageRegion{image: image, maxSize: maxSize}
	r.attach(image)
	return r
}

func (r *imageRegion) SetDataURL(dataURL string) error {
	size := r.maxSize()
	thumb, err := preview.Thumbnail(dataURL, uint(size))
	if err != nil {
		return err
	}

	fyne.Do(func() {
		r.image.Image = thumb
		r.image.SetMinSize(fyne.NewSize(float32(thumb.Bounds().Dx()), float32(thumb.Bounds().Dy())))
		r.image.Refresh()
	})
	return nil
}

// spinnerRegion wraps the infinite progress bar
type spinnerRegion struct {
	visibility
	bar *widget.ProgressBarInfinite
}

func newSpinnerRegion(bar *widget.ProgressBarInfinite) *spinnerRegion {
	bar.Stop()
	r := &spinnerRegion{bar: bar}
	r.attach(bar)
	return r
}

func (r *spinnerRegion) Show() {
	r.visibility.Show()
	fyne.Do(r.bar.Start)
}

func (r *spinnerRegion) Hide() {
	r.visibility.Hide()
	fyne.Do(r.bar.Stop)
}

// regionSet holds the concrete regions of the main window
type regionSet struct {
	summary *labelRegion
	details *labelRegion
	preview *imageRegion
	spinner *spinnerRegion
	err     *labelRegion
}

func (r *regionSet) bind() upload.Regions {
	return upload.Regions{
		Summary: r.summary,
		Details: r.details,
		Preview: r.preview,
		Spinner: r.spinner,
		Error:   r.err,
	}
}
