package predict

// Package predict talks to the image classification endpoint: it uploads the
// selected file as multipart form data, reads the raw response text and turns
// it into a validated prediction result or one of the typed errors below.
