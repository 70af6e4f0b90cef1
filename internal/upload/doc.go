package upload

// Package upload implements the submission handler behind the image form: it
// resets the display regions, sends the selected file to the prediction
// service, and renders either the best prediction or a single error message.
// Display regions are injected so the same controller drives the Fyne window,
// the console and test fakes.
