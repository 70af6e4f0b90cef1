package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestRegionsStartHidden(t *testing.T) {
	r := NewRegions()
	if r.Summary.Visible() || r.Error.Visible() || r.Details.Visible() || r.Preview.Visible() || r.Spinner.Visible() {
		t.Error("All regions should start hidden")
	}
	if r.Failed() {
		t.Error("Fresh regions should not report failure")
	}
}

func TestRenderSuccess(t *testing.T) {
	r := NewRegions()
	r.Summary.SetText("Beim Bild handelt es sich um ein(e) Dog (Wahrscheinlichkeit: 90.00%).")
	r.Summary.Show()
	r.Details.SetText("[\n  {}\n]")
	if err := r.Preview.SetDataURL("data:image/png;base64,aGk="); err != nil {
		t.Fatalf("SetDataURL failed: %v", err)
	}
	r.Preview.Show()

	var out, errOut bytes.Buffer
	r.Render(&out, &errOut)

	if errOut.Len() != 0 {
		t.Errorf("Expected no error output, got %q", errOut.String())
	}
	if !strings.Contains(out.String(), "Dog") {
		t.Errorf("Expected summary in output, got %q", out.String())
	}
	if strings.Contains(out.String(), "[\n") {
		t.Error("Hidden details must not be printed")
	}
	if !strings.Contains(out.String(), "Preview: image/png, 2 bytes") {
		t.Errorf("Expected preview line, got %q", out.String())
	}

	r.Details.Show()
	out.Reset()
	r.Render(&out, &errOut)
	if !strings.Contains(out.String(), "[\n  {}\n]") {
		t.Errorf("Expected details after Show, got %q", out.String())
	}
}

func TestRenderError(t *testing.T) {
	r := NewRegions()
	r.Error.SetText("Bitte wähle zuerst eine Datei aus.")
	r.Error.Show()

	var out, errOut bytes.Buffer
	r.Render(&out, &errOut)

	if !r.Failed() {
		t.Error("Expected Failed() to be true")
	}
	if strings.TrimSpace(errOut.String()) != "Bitte wähle zuerst eine Datei aus." {
		t.Errorf("Unexpected error output %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("Expected no standard output, got %q", out.String())
	}
}

func TestPreviewRejectsInvalidDataURL(t *testing.T) {
	r := NewRegions()
	if err := r.Preview.SetDataURL("not a data url"); err == nil {
		t.Error("Expected error for invalid data URL")
	}
}
