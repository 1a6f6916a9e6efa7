// Package metrics counts and times client calls with Prometheus.
package metrics

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

const (
	defaultNamespace = "appwrite"
	defaultSubsystem = "client"
	statusNoResponse = "none"
)

var _ httpclient.Observer = (*Collector)(nil)

// Collector is an httpclient.Observer. Install it with
// httpclient.WithObserver.
type Collector struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  *prometheus.Registry

	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		namespace: defaultNamespace,
		subsystem: defaultSubsystem,
		buckets:   prometheus.DefBuckets,
		registry:  nil,
		calls:     nil,
		duration:  nil,
		failures:  nil,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.registry == nil {
		c.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(c.registry)

	c.calls = auto.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
		Namespace: c.namespace,
		Subsystem: c.subsystem,
		Name:      "calls_total",
		Help:      "Total number of API calls by method and response status",
	}, []string{"method", "status"})

	c.duration = auto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:exhaustruct
		Namespace: c.namespace,
		Subsystem: c.subsystem,
		Name:      "call_duration_seconds",
		Help:      "API call latency in seconds",
		Buckets:   c.buckets,
	}, []string{"method"})

	c.failures = auto.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
		Namespace: c.namespace,
		Subsystem: c.subsystem,
		Name:      "call_failures_total",
		Help:      "Total number of API calls that returned an error or no response",
	}, []string{"method"})

	return c
}

// ObserveCall records one finished call. A status of 0 means no response
// arrived and is labelled "none".
func (c *Collector) ObserveCall(method string, status int, duration time.Duration) {
	label := statusNoResponse
	if status > 0 {
		label = strconv.Itoa(status)
	}

	c.calls.WithLabelValues(method, label).Inc()
	c.duration.WithLabelValues(method).Observe(duration.Seconds())

	if status == 0 || status >= http.StatusBadRequest {
		c.failures.WithLabelValues(method).Inc()
	}
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}) //nolint:exhaustruct
}

// WriteText dumps the current metrics in the text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}

	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))

	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", family.GetName(), err)
		}
	}

	return nil
}
