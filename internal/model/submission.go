package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubmissionIDPrefix prefixes every generated submission ID
const SubmissionIDPrefix = "submission-"

// SelectedFile is the single file chosen by the user for upload
type SelectedFile struct {
	Name        string // base file name as shown in the picker
	ContentType string // MIME type, e.g. "image/png"; may be empty
	Data        []byte
}

// Size returns the file size in bytes
func (f *SelectedFile) Size() int {
	if f == nil {
		return 0
	}
	return len(f.Data)
}

// Submission is the transient state of one form submission. A fresh
// Submission is created for every submit and discarded once rendered.
type Submission struct {
	ID         string
	File       *SelectedFile
	Status     SubmissionStatus
	InFlight   bool            // request outstanding; drives the spinner
	Best       *PredictionItem // set once rendered
	LastError  string          // user-visible error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewSubmission creates an idle submission for the given file (which may be nil)
func NewSubmission(file *SelectedFile) *Submission {
	return &Submission{
		ID:        SubmissionIDPrefix + uuid.NewString(),
		File:      file,
		Status:    SubmissionStatusIdle,
		StartedAt: time.Now(),
	}
}

// Transition moves the submission to the next state, rejecting illegal steps
func (s *Submission) Transition(next SubmissionStatus) error {
	if !s.Status.CanTransition(next) {
		return fmt.Errorf("invalid submission transition %s -> %s", s.Status, next)
	}
	s.Status = next
	if next.IsFinished() {
		s.InFlight = false
		s.FinishedAt = time.Now()
	}
	return nil
}

// Snapshot returns a copy that is safe to hand to observers
func (s *Submission) Snapshot() *Submission {
	c := *s
	if s.Best != nil {
		best := *s.Best
		c.Best = &best
	}
	return &c
}

// Elapsed returns how long the submission took, or has taken so far
func (s *Submission) Elapsed() time.Duration {
	if s.FinishedAt.IsZero() {
		return time.Since(s.StartedAt)
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// GetDisplayName returns the file name without directories, or "—" when no file was chosen
func (s *Submission) GetDisplayName() string {
	if s.File == nil || s.File.Name == "" {
		return "—"
	}
	parts := strings.FieldsFunc(s.File.Name, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return "—"
	}
	return parts[len(parts)-1]
}
