// Package cli wires the command line: the desktop window is the default
// command, with headless classify, ping and a mock server alongside it.
package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/image-predictor/internal/config"
	"github.com/ytget/image-predictor/internal/logging"
)

// errSubmissionFailed is returned after the error region was already printed
var errSubmissionFailed = errors.New("submission failed")

// BuildInfo is set at build time
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// GUIRunner opens the desktop window with the resolved options
type GUIRunner func(opts config.Options) error

// NewRootCmd builds the command tree. Flag defaults come from the environment.
func NewRootCmd(info BuildInfo, runGUI GUIRunner) *cobra.Command {
	opts := config.FromEnv()

	rootCmd := &cobra.Command{
		Use:   "image-predictor",
		Short: "Classify images with a remote prediction service",
		Long: `image-predictor uploads one image to a /predict endpoint and shows
the most probable class together with the full response.

Without a subcommand the desktop window is opened.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.SetLevel(opts.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.EndpointURL, "endpoint", "e", opts.EndpointURL, "prediction service base URL")
	flags.DurationVarP(&opts.Timeout, "timeout", "t", opts.Timeout, "request timeout")
	flags.StringVarP(&opts.Language, "lang", "l", opts.Language, "message language (de, en)")
	flags.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		guiCmd(&opts, runGUI),
		classifyCmd(&opts),
		pingCmd(&opts),
		serveMockCmd(),
		versionCmd(info),
	)

	return rootCmd
}

func guiCmd(opts *config.Options, runGUI GUIRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(*opts)
		},
	}
}

// IsSubmissionFailure reports whether err only signals an already printed failure
func IsSubmissionFailure(err error) bool {
	return errors.Is(err, errSubmissionFailed)
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return config.DefaultTimeout
	}
	return d
}
