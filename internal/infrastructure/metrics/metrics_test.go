package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dolphnet-api/internal/infrastructure/metrics"
)

func TestMetrics_LoginsYTransiciones(t *testing.T) {
	m := metrics.New()

	m.LoginRecorded("admin")
	m.LoginRecorded("admin")
	m.LoginRecorded("seller")
	m.TransitionRecorded("logistics", "start-transit")

	n, err := testutil.GatherAndCount(m.Registry(), "dolphnet_logins_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = testutil.GatherAndCount(m.Registry(), "dolphnet_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_HandlerExponeHTTP(t *testing.T) {
	m := metrics.New()
	m.ObserveHTTP("/login", "POST", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="POST",route="/login",status="200"} 1`)
	assert.Contains(t, string(body), "http_request_duration_seconds_bucket")
}

func TestMetrics_InstanciasIndependientes(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.LoginRecorded("delivery")

	n, err := testutil.GatherAndCount(b.Registry(), "dolphnet_logins_total")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
