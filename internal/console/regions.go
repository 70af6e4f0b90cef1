// Package console provides display regions that collect text in memory and
// print the visible ones to a terminal once a submission has finished.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/ytget/image-predictor/internal/preview"
	"github.com/ytget/image-predictor/internal/upload"
)

// TextRegion stores text and visibility
type TextRegion struct {
	mu      sync.Mutex
	text    string
	visible bool
}

// Show marks the region visible
func (r *TextRegion) Show() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = true
}

// Hide marks the region hidden
func (r *TextRegion) Hide() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = false
}

// Visible reports whether the region is shown
func (r *TextRegion) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible
}

// SetText replaces the region text
func (r *TextRegion) SetText(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text = text
}

// Text returns the region text
func (r *TextRegion) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text
}

// PreviewRegion describes the previewed image by content type and size
type PreviewRegion struct {
	TextRegion
}

// SetDataURL validates the data URL and records a one-line description
func (r *PreviewRegion) SetDataURL(dataURL string) error {
	contentType, data, err := preview.Decode(dataURL)
	if err != nil {
		return err
	}
	r.SetText(fmt.Sprintf("%s, %d bytes", contentType, len(data)))
	return nil
}

// Regions is the full set of console regions
type Regions struct {
	Summary TextRegion
	Details TextRegion
	Preview PreviewRegion
	Spinner TextRegion
	Error   TextRegion
}

// NewRegions creates hidden, empty console regions
func NewRegions() *Regions {
	return &Regions{}
}

// Bind returns the regions in the form expected by the upload controller
func (r *Regions) Bind() upload.Regions {
	return upload.Regions{
		Summary: &r.Summary,
		Details: &r.Details,
		Preview: &r.Preview,
		Spinner: &r.Spinner,
		Error:   &r.Error,
	}
}

// Failed reports whether the error region is shown
func (r *Regions) Failed() bool {
	return r.Error.Visible()
}

// Render writes the visible regions: results to out, the error to errOut
func (r *Regions) Render(out, errOut io.Writer) {
	if r.Error.Visible() {
		fmt.Fprintln(errOut, r.Error.Text())
	}
	if r.Summary.Visible() {
		fmt.Fprintln(out, r.Summary.Text())
		if r.Details.Visible() {
			fmt.Fprintln(out, r.Details.Text())
		}
	}
	if r.Preview.Visible() {
		fmt.Fprintf(out, "Preview: %s\n", r.Preview.Text())
	}
}
