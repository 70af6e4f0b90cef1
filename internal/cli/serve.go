package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ytget/image-predictor/internal/mockserver"
)

func serveMockCmd() *cobra.Command {
	var (
		addr       string
		synsetPath string
		topK       int
	)

	cmd := &cobra.Command{
		Use:   "serve-mock",
		Short: "Run a local stand-in for the prediction service",
		Long: `Serve /ping, /predict and /metrics on ADDR. Predictions are
deterministic per image and drawn from the synset file (one class per line)
or a built-in list of fruit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			classes := mockserver.DefaultSynset
			if synsetPath != "" {
				loaded, err := mockserver.LoadSynset(synsetPath)
				if err != nil {
					return err
				}
				classes = loaded
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := mockserver.New(mockserver.NewClassifier(classes, topK))
			return server.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", mockserver.DefaultListenAddr, "listen address")
	cmd.Flags().StringVar(&synsetPath, "synset", "", "class names file, one per line")
	cmd.Flags().IntVarP(&topK, "top-k", "k", mockserver.DefaultTopK, "number of classes per prediction")

	return cmd
}
