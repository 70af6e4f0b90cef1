package platform

// Package platform contains OS/platform integration: reading the selected
// image from disk, content type detection and well-known user directories.
