package mockserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/ytget/image-predictor/internal/predict"
)

// Response texts
const (
	PingMessage       = "Classification Controller is running!"
	MsgEmptyImage     = "Image file is empty."
	MsgMissingImage   = "Required part 'image' is not present."
	MsgInvalidForm    = "Failed to parse multipart form."
	MsgImageFailed    = "Error processing image file."
	MaxUploadSize     = 10 << 20
	DefaultListenAddr = ":8080"
	shutdownTimeout   = 5 * time.Second
)

// Server serves the prediction API backed by a Classifier
type Server struct {
	classifier *Classifier
	registry   *prometheus.Registry
	metrics    *metrics
}

// New creates a server with its own metrics registry
func New(classifier *Classifier) *Server {
	if classifier == nil {
		classifier = NewClassifier(nil, DefaultTopK)
	}
	registry := prometheus.NewRegistry()
	return &Server{
		classifier: classifier,
		registry:   registry,
		metrics:    newMetrics(registry),
	}
}

// Router builds the HTTP routes
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get(predict.PingPath, s.handlePing)
	r.Post(predict.PredictPath, s.handlePredict)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, PingMessage)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		s.metrics.predictionDuration.Observe(time.Since(start).Seconds())
	}()

	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		s.reject(w, http.StatusBadRequest, OutcomeBadRequest, MsgInvalidForm)
		return
	}

	file, header, err := r.FormFile(predict.FormFieldImage)
	if err != nil {
		s.reject(w, http.StatusBadRequest, OutcomeBadRequest, MsgMissingImage)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.reject(w, http.StatusInternalServerError, OutcomeUndecodable, MsgImageFailed)
		return
	}
	if len(data) == 0 {
		s.reject(w, http.StatusBadRequest, OutcomeBadRequest, MsgEmptyImage)
		return
	}
	s.metrics.imageBytes.Observe(float64(len(data)))

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.Printf("Failed to decode %s: %v", header.Filename, err)
		s.reject(w, http.StatusInternalServerError, OutcomeUndecodable, MsgImageFailed)
		return
	}
	log.Printf("Classifying %s (%s, %d bytes)", header.Filename, format, len(data))

	items := s.classifier.Classify(data)
	s.metrics.predictionsTotal.WithLabelValues(OutcomeOK).Inc()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		log.Printf("Failed to write prediction: %v", err)
	}
}

func (s *Server) reject(w http.ResponseWriter, status int, outcome, message string) {
	s.metrics.predictionsTotal.WithLabelValues(outcome).Inc()
	http.Error(w, message, status)
}

// ListenAndServe runs the server until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultListenAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Mock prediction server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("mock server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Printf("Shutting down mock prediction server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("mock server shutdown: %w", err)
		}
		return nil
	}
}
