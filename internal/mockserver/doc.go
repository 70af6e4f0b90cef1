package mockserver

// Package mockserver implements a stand-in for the classification service so
// the client can be developed and tested without the model. It answers
// /predict with deterministic, softmax-normalized top-K classifications derived
// from the uploaded bytes, and exposes /ping and Prometheus /metrics.
