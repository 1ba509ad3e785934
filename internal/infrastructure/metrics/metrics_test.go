package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObservePrediction("Toxic")
	m.ObservePrediction("Toxic")
	m.ObservePrediction("Not Toxic")
	m.ObserveClassifierError("timeout")
	m.ObserveRequest(http.MethodPost, "/predict", http.StatusOK)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.predictions.WithLabelValues("Toxic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictions.WithLabelValues("Not Toxic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.classifierErrors.WithLabelValues("timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/predict", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveClassifierDuration(120 * time.Millisecond)
	m.ObservePrediction("Toxic")

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "toxicity_classifier_duration_seconds_count 1")
	assert.Contains(t, body, `toxicity_predictions_total{label="Toxic"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObservePrediction("Toxic")
		m.ObserveClassifierError("failure")
		m.ObserveClassifierDuration(time.Second)
		m.ObserveRequest(http.MethodGet, "/health", http.StatusOK)
	})
}

func TestMetrics_NilHandler(t *testing.T) {
	var m *Metrics

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		m.Handler().ServeHTTP(w, req)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
