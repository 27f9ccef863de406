package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeCancelled, Outcome(fmt.Errorf("stream: %w", context.Canceled)))
	assert.Equal(t, OutcomeError, Outcome(errors.New("502")))
}

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveHTTP("POST", "/api/get_transcript", 200, 150*time.Millisecond)
	m.ObserveHTTP("POST", "/api/get_transcript", 200, 50*time.Millisecond)
	m.ObserveHTTP("GET", "", 404, time.Millisecond)
	m.ObserveUpstream("deepgram", "transcribe", nil, time.Second)
	m.ObserveUpstream("openai", "stream", errors.New("boom"), time.Second)
	m.AddUploadedBytes(2048)
	m.AddUploadedBytes(-1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/get_transcript", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("deepgram", "transcribe", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("openai", "stream", OutcomeError)))
	assert.Equal(t, 2048.0, testutil.ToFloat64(m.uploadedBytes))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveUpstream("deepgram", "transcribe", nil, time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `scripter_upstream_requests_total{operation="transcribe",outcome="success",provider="deepgram"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
