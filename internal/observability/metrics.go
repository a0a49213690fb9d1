package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ClientCollector bundles Prometheus metrics for the request pipeline:
// per-operation request counts and latency, cache effectiveness, and
// rate-limiter pressure.
type ClientCollector struct {
	gatherer prometheus.Gatherer

	Requests  *prometheus.CounterVec
	Durations *prometheus.HistogramVec

	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	QueueDepth          prometheus.Gauge
	RateLimitRejections prometheus.Counter
}

// Outcome labels for the request counter.
const (
	OutcomeOK               = "ok"
	OutcomeInvalidParameter = "invalid_parameter"
	OutcomeRateLimited      = "rate_limited"
	OutcomeRemoteFailure    = "remote_failure"
	OutcomeCanceled         = "canceled"
)

// NewClientCollector registers client Prometheus metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewClientCollector(reg prometheus.Registerer) (*ClientCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "satwatch_requests_total",
		Help: "Total client operations, labeled by operation and outcome.",
	}, []string{"operation", "outcome"})
	requests, err := registerCounterVec(reg, requests, "satwatch_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "satwatch_request_duration_seconds",
		Help:    "Client operation latency in seconds, including queue wait.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"operation"})
	durations, err = registerHistogramVec(reg, durations, "satwatch_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	hits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "satwatch_cache_hits_total",
		Help: "Responses served from the in-memory cache, by operation.",
	}, []string{"operation"})
	hits, err = registerCounterVec(reg, hits, "satwatch_cache_hits_total")
	if err != nil {
		return nil, err
	}

	misses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "satwatch_cache_misses_total",
		Help: "Cache misses that went on to the network, by operation.",
	}, []string{"operation"})
	misses, err = registerCounterVec(reg, misses, "satwatch_cache_misses_total")
	if err != nil {
		return nil, err
	}

	depth, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "satwatch_ratelimit_queue_depth",
		Help: "Requests currently parked on the rate-limit queue.",
	}), "satwatch_ratelimit_queue_depth")
	if err != nil {
		return nil, err
	}

	rejections := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "satwatch_ratelimit_rejections_total",
		Help: "Requests rejected because the hourly ceiling was reached with queueing disabled.",
	})
	rejections, err = registerCounter(reg, rejections, "satwatch_ratelimit_rejections_total")
	if err != nil {
		return nil, err
	}

	return &ClientCollector{
		gatherer:            gatherer,
		Requests:            requests,
		Durations:           durations,
		CacheHits:           hits,
		CacheMisses:         misses,
		QueueDepth:          depth,
		RateLimitRejections: rejections,
	}, nil
}

// ObserveRequest records one completed operation.
func (c *ClientCollector) ObserveRequest(operation, outcome string, seconds float64) {
	if c == nil {
		return
	}
	if c.Requests != nil {
		c.Requests.WithLabelValues(operation, outcome).Inc()
	}
	if c.Durations != nil {
		c.Durations.WithLabelValues(operation).Observe(seconds)
	}
}

// ObserveCache records a cache lookup result for an operation.
func (c *ClientCollector) ObserveCache(operation string, hit bool) {
	if c == nil {
		return
	}
	if hit {
		if c.CacheHits != nil {
			c.CacheHits.WithLabelValues(operation).Inc()
		}
		return
	}
	if c.CacheMisses != nil {
		c.CacheMisses.WithLabelValues(operation).Inc()
	}
}

// SetQueueDepth mirrors the rate limiter's queue depth into the gauge.
func (c *ClientCollector) SetQueueDepth(depth int) {
	if c == nil || c.QueueDepth == nil {
		return
	}
	c.QueueDepth.Set(float64(depth))
}

// IncRateLimitRejection counts a local window rejection.
func (c *ClientCollector) IncRateLimitRejection() {
	if c == nil || c.RateLimitRejections == nil {
		return
	}
	c.RateLimitRejections.Inc()
}

// Handler exposes a ready-to-use /metrics handler for library consumers that
// run a long-lived process around the client.
func (c *ClientCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
