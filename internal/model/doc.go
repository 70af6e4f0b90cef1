package model

// Package model defines domain data structures used across the app: prediction
// items returned by the classification endpoint, the file selected for upload,
// and the per-submission state machine. Structures are designed for direct use
// by the upload controller and explicit state transitions.
