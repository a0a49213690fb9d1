package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestObserveRequestRecordsCountAndDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewClientCollector(reg)
	if err != nil {
		t.Fatalf("NewClientCollector: %v", err)
	}

	collector.ObserveRequest("GetTLE", OutcomeOK, 0.02)
	collector.ObserveRequest("GetTLE", OutcomeRemoteFailure, 0.5)

	if got := testutil.ToFloat64(collector.Requests.WithLabelValues("GetTLE", OutcomeOK)); got != 1 {
		t.Fatalf("satwatch_requests_total{ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.Requests.WithLabelValues("GetTLE", OutcomeRemoteFailure)); got != 1 {
		t.Fatalf("satwatch_requests_total{remote_failure} = %v, want 1", got)
	}

	if count := histogramSampleCount(t, reg, "satwatch_request_duration_seconds", map[string]string{
		"operation": "GetTLE",
	}); count != 2 {
		t.Fatalf("satwatch_request_duration_seconds sample_count = %d, want 2", count)
	}
}

func TestObserveCacheSplitsHitsAndMisses(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewClientCollector(reg)
	if err != nil {
		t.Fatalf("NewClientCollector: %v", err)
	}

	collector.ObserveCache("GetPositions", true)
	collector.ObserveCache("GetPositions", true)
	collector.ObserveCache("GetPositions", false)

	if got := testutil.ToFloat64(collector.CacheHits.WithLabelValues("GetPositions")); got != 2 {
		t.Fatalf("satwatch_cache_hits_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.CacheMisses.WithLabelValues("GetPositions")); got != 1 {
		t.Fatalf("satwatch_cache_misses_total = %v, want 1", got)
	}
}

func TestRegistrationIsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewClientCollector(reg)
	if err != nil {
		t.Fatalf("NewClientCollector (first): %v", err)
	}
	second, err := NewClientCollector(reg)
	if err != nil {
		t.Fatalf("NewClientCollector (second): %v", err)
	}

	first.IncRateLimitRejection()
	second.IncRateLimitRejection()

	if got := testutil.ToFloat64(second.RateLimitRejections); got != 2 {
		t.Fatalf("satwatch_ratelimit_rejections_total = %v, want 2 (shared collector)", got)
	}
}

func TestMetricsHandlerExposesClientMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewClientCollector(reg)
	if err != nil {
		t.Fatalf("NewClientCollector: %v", err)
	}
	collector.ObserveRequest("GetAbove", OutcomeOK, 0.01)
	collector.ObserveCache("GetAbove", false)
	collector.SetQueueDepth(4)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, metric := range []string{
		"satwatch_requests_total",
		"satwatch_request_duration_seconds",
		"satwatch_cache_misses_total",
		"satwatch_ratelimit_queue_depth",
	} {
		if !strings.Contains(body, metric) {
			t.Fatalf("expected %q in /metrics output", metric)
		}
	}
}

func histogramSampleCount(t *testing.T, gatherer prometheus.Gatherer, name string, labels map[string]string) uint64 {
	t.Helper()

	metrics, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.Metric {
			if matchLabels(m.GetLabel(), labels) && m.GetHistogram() != nil {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func matchLabels(got []*dto.LabelPair, want map[string]string) bool {
	if len(got) < len(want) {
		return false
	}
	matched := 0
	for _, lp := range got {
		if val, ok := want[lp.GetName()]; ok && val == lp.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
