package predict

import (
	"context"

	"github.com/ytget/image-predictor/internal/model"
)

// Predictor defines the interface for the prediction service client.
type Predictor interface {
	// Send uploads the file and returns the raw response without interpreting it.
	// Only transport failures are returned as errors (NetworkError).
	Send(ctx context.Context, file *model.SelectedFile) (*RawResponse, error)

	// Ping checks that the prediction service is reachable
	Ping(ctx context.Context) (string, error)

	// Endpoint returns the base URL requests are sent to
	Endpoint() string
}
