package metrics_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andyle182810/gappwrite/health"
	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/metrics"
	"github.com/andyle182810/gappwrite/testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveCall(t *testing.T) {
	t.Parallel()

	collector := metrics.NewCollector()

	collector.ObserveCall(http.MethodGet, http.StatusOK, 20*time.Millisecond)
	collector.ObserveCall(http.MethodGet, http.StatusOK, 30*time.Millisecond)
	collector.ObserveCall(http.MethodPost, http.StatusNotFound, 10*time.Millisecond)
	collector.ObserveCall(http.MethodPost, 0, time.Second)

	expected := `
# HELP appwrite_client_calls_total Total number of API calls by method and response status
# TYPE appwrite_client_calls_total counter
appwrite_client_calls_total{method="GET",status="200"} 2
appwrite_client_calls_total{method="POST",status="404"} 1
appwrite_client_calls_total{method="POST",status="none"} 1
# HELP appwrite_client_call_failures_total Total number of API calls that returned an error or no response
# TYPE appwrite_client_call_failures_total counter
appwrite_client_call_failures_total{method="POST"} 2
`

	err := promtestutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected),
		"appwrite_client_calls_total", "appwrite_client_call_failures_total")
	require.NoError(t, err)

	count, err := promtestutil.GatherAndCount(collector.Registry(), "appwrite_client_call_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCollector_Options(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(
		metrics.WithNamespace("acme"),
		metrics.WithSubsystem("sdk"),
		metrics.WithBuckets([]float64{0.1, 1}),
		metrics.WithRegistry(registry),
	)

	collector.ObserveCall(http.MethodDelete, http.StatusNoContent, 50*time.Millisecond)

	assert.Same(t, registry, collector.Registry())

	count, err := promtestutil.GatherAndCount(registry, "acme_sdk_calls_total", "acme_sdk_call_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCollector_ObservesClientCalls(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, http.StatusOK, `{"status":"pass"}`)
	collector := metrics.NewCollector()
	client := httpclient.New(server.URL,
		httpclient.WithLogger(zerolog.Nop()),
		httpclient.WithObserver(collector),
	)

	for range 3 {
		require.NoError(t, httpclient.Drain(health.New(client).Get(t.Context())))
	}

	expected := `
# HELP appwrite_client_calls_total Total number of API calls by method and response status
# TYPE appwrite_client_calls_total counter
appwrite_client_calls_total{method="GET",status="200"} 3
`

	err := promtestutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "appwrite_client_calls_total")
	require.NoError(t, err)
}

func TestCollector_Exposition(t *testing.T) {
	t.Parallel()

	collector := metrics.NewCollector()
	collector.ObserveCall(http.MethodGet, http.StatusOK, time.Millisecond)

	server := httptest.NewServer(collector.Handler())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL) //nolint:noctx
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `appwrite_client_calls_total{method="GET",status="200"} 1`)

	var buf bytes.Buffer
	require.NoError(t, collector.WriteText(&buf))
	assert.Contains(t, buf.String(), `appwrite_client_calls_total{method="GET",status="200"} 1`)
}
