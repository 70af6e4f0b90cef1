package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ytget/image-predictor/internal/config"
	"github.com/ytget/image-predictor/internal/console"
	"github.com/ytget/image-predictor/internal/locale"
	"github.com/ytget/image-predictor/internal/logging"
	"github.com/ytget/image-predictor/internal/model"
	"github.com/ytget/image-predictor/internal/platform"
	"github.com/ytget/image-predictor/internal/predict"
	"github.com/ytget/image-predictor/internal/preview"
	"github.com/ytget/image-predictor/internal/upload"
)

func classifyCmd(opts *config.Options) *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "classify [FILE]",
		Short: "Classify one image and print the result",
		Long: `Upload FILE to the prediction endpoint and print the summary sentence.
With --details the full response is printed as indented JSON.

Exits with a non-zero status when the error message is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file *model.SelectedFile
			if len(args) == 1 {
				f, err := platform.ReadImageFile(args[0])
				if err != nil {
					return err
				}
				file = f
			}

			messages := locale.NewLocalization()
			messages.SetLanguage(opts.Language)

			regions := console.NewRegions()
			client := predict.NewClient(opts.EndpointURL, timeoutOrDefault(opts.Timeout))
			controller := upload.NewController(regions.Bind(), client, preview.NewFileLoader(), messages, logging.GetLogger())

			sub := runClassify(cmd.Context(), controller, file, details)
			regions.Render(cmd.OutOrStdout(), cmd.ErrOrStderr())

			if sub.Status == model.SubmissionStatusError {
				return errSubmissionFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&details, "details", "d", false, "print the full response")

	return cmd
}

func runClassify(ctx context.Context, controller *upload.Controller, file *model.SelectedFile, details bool) *model.Submission {
	if ctx == nil {
		ctx = context.Background()
	}
	sub := controller.Submit(ctx, file)
	if details && sub.Status == model.SubmissionStatusRendered {
		controller.ToggleDetails()
	}
	return sub
}
