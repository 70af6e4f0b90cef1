package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/image-predictor/internal/config"
	"github.com/ytget/image-predictor/internal/predict"
)

func pingCmd(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the prediction service is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := predict.NewClient(opts.EndpointURL, timeoutOrDefault(opts.Timeout))
			status, err := client.Ping(cmd.Context())
			if err != nil {
				return fmt.Errorf("ping %s: %w", client.Endpoint(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", client.Endpoint(), status)
			return nil
		},
	}
}
