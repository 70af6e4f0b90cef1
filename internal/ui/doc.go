package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It lets the user pick one image, hands it to the upload controller and shows
// the summary, details, preview and error regions. All UI strings are localized.
