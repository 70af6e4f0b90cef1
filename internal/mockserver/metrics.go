package mockserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "image_predictor"

// Outcome labels for the predictions counter
const (
	OutcomeOK          = "ok"
	OutcomeBadRequest  = "bad_request"
	OutcomeUndecodable = "undecodable"
)

type metrics struct {
	predictionsTotal   *prometheus.CounterVec
	predictionDuration prometheus.Histogram
	imageBytes         prometheus.Histogram
}

func newMetrics(registry prometheus.Registerer) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		predictionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "predictions_total",
			Help:      "Total number of prediction requests by outcome",
		}, []string{"outcome"}),

		predictionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "prediction_duration_seconds",
			Help:      "Prediction request handling duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		imageBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "image_bytes",
			Help:      "Size of uploaded images in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		}),
	}
}
