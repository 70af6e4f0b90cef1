package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconDetails  = "☰"
)

// Layout sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 720

	DetailsMinWidth  float32 = 560
	DetailsMinHeight float32 = 180

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 320
)

// Timeouts
const (
	PingTimeout = 5 * time.Second
)
