package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/image-predictor/internal/cli"
	"github.com/ytget/image-predictor/internal/config"
	"github.com/ytget/image-predictor/internal/ui"
)

// Version information set during build via -ldflags "-X main.version=X.Y.Z"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	AppID   = "com.ytget.image-predictor"
	AppName = "Image Predictor"
)

func main() {
	config.LoadEnv()

	rootCmd := cli.NewRootCmd(cli.BuildInfo{Version: version, Commit: commit, Date: date}, runGUI)
	if err := rootCmd.Execute(); err != nil {
		// the error region was already printed by classify
		if !cli.IsSubmissionFailure(err) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

// runGUI opens the desktop window and blocks until it is closed
func runGUI(opts config.Options) error {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	ui.NewRootUI(myWindow, myApp, opts)

	myWindow.ShowAndRun()
	return nil
}
