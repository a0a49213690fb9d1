// End-to-end coverage of the full client pipeline against a scripted local
// API server: validation, cache reuse, rate limiting, error classification,
// and metrics exposure through a shared registry.
package tests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/signalsfoundry/satwatch/n2yo"
	"github.com/signalsfoundry/satwatch/orbit"
)

type clientTestEnv struct {
	client *n2yo.Client
	hits   *atomic.Int64
	reg    *prometheus.Registry
}

const issTLEBody = `{
	"info": {"satid": 25544, "satname": "SPACE STATION", "transactionscount": 4},
	"tle": "1 25544U 98067A   24001.50000000  .00016717  00000-0  30270-3 0  9999\r\n2 25544  51.6416 247.4627 0006703 130.5360 325.0288 15.49560532429200"
}`

const positionsBody = `{
	"info": {"satid": 25544, "satname": "SPACE STATION", "transactionscount": 5},
	"positions": [
		{"satlatitude": 41.1, "satlongitude": -75.9, "sataltitude": 420.1, "azimuth": 10.5, "elevation": 45.0, "ra": 0, "dec": 0, "timestamp": 1700000000},
		{"satlatitude": 41.2, "satlongitude": -75.8, "sataltitude": 420.2, "azimuth": 10.6, "elevation": 45.1, "ra": 0, "dec": 0, "timestamp": 1700000001}
	]
}`

func newClientTestEnv(t *testing.T, opts ...n2yo.Option) *clientTestEnv {
	t.Helper()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch {
		case strings.HasPrefix(r.URL.Path, "/tle/"):
			w.Write([]byte(issTLEBody))
		case strings.HasPrefix(r.URL.Path, "/positions/"):
			w.Write([]byte(positionsBody))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "unknown endpoint"}`))
		}
	}))
	t.Cleanup(srv.Close)

	reg := prometheus.NewRegistry()
	opts = append([]n2yo.Option{
		n2yo.WithBaseURL(srv.URL),
		n2yo.WithCacheSweepInterval(0),
		n2yo.WithMetrics(reg),
	}, opts...)

	client, err := n2yo.New("E2EKEY", opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(client.Close)

	return &clientTestEnv{client: client, hits: &hits, reg: reg}
}

func TestClientEndToEnd(t *testing.T) {
	env := newClientTestEnv(t)
	ctx := context.Background()

	t.Run("tle fetch and local propagation", func(t *testing.T) {
		tle, err := env.client.GetTLEByName(ctx, "iss")
		if err != nil {
			t.Fatalf("GetTLEByName() error = %v", err)
		}
		l1, l2 := tle.Lines()
		epoch := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		sp, err := orbit.SubpointFromTLE(l1, l2, epoch)
		if err != nil {
			t.Fatalf("SubpointFromTLE() error = %v", err)
		}
		if sp.AltitudeKm < 300 || sp.AltitudeKm > 500 {
			t.Errorf("AltitudeKm = %v, want a LEO altitude", sp.AltitudeKm)
		}
	})

	t.Run("positions reuse the cache", func(t *testing.T) {
		before := env.hits.Load()
		for i := 0; i < 3; i++ {
			resp, err := env.client.GetPositions(ctx, 25544, 41.702, -76.014, 0, 2)
			if err != nil {
				t.Fatalf("GetPositions() call %d error = %v", i+1, err)
			}
			if len(resp.Positions) != 2 {
				t.Fatalf("len(Positions) = %d, want 2", len(resp.Positions))
			}
		}
		if got := env.hits.Load() - before; got != 1 {
			t.Errorf("network calls for repeated positions = %d, want 1", got)
		}
	})

	t.Run("unknown endpoint classified as remote failure", func(t *testing.T) {
		_, err := env.client.GetAbove(ctx, 41.702, -76.014, 0, 70, 18)
		var remote *n2yo.RemoteError
		if !errors.As(err, &remote) {
			t.Fatalf("error = %v, want *n2yo.RemoteError", err)
		}
		if remote.StatusCode != http.StatusNotFound {
			t.Errorf("StatusCode = %d, want 404", remote.StatusCode)
		}
	})

	t.Run("metrics registered on the shared registry", func(t *testing.T) {
		families, err := env.reg.Gather()
		if err != nil {
			t.Fatalf("Gather() error = %v", err)
		}
		found := map[string]bool{}
		for _, fam := range families {
			found[fam.GetName()] = true
		}
		for _, name := range []string{
			"satwatch_requests_total",
			"satwatch_cache_hits_total",
			"satwatch_cache_misses_total",
		} {
			if !found[name] {
				t.Errorf("metric family %q not exposed", name)
			}
		}
	})
}

func TestClientEndToEndRateCeiling(t *testing.T) {
	env := newClientTestEnv(t, n2yo.WithRateLimit(1, false))
	ctx := context.Background()

	if _, err := env.client.GetTLE(ctx, 25544); err != nil {
		t.Fatalf("GetTLE() error = %v", err)
	}

	_, err := env.client.GetTLE(ctx, 20580)
	var limited *n2yo.RateLimitedError
	if !errors.As(err, &limited) {
		t.Fatalf("error = %v, want *n2yo.RateLimitedError", err)
	}
	if got := env.hits.Load(); got != 1 {
		t.Errorf("network calls = %d, want 1 (second request rejected locally)", got)
	}

	// A cache hit still answers while the window is saturated.
	if _, err := env.client.GetTLE(ctx, 25544); err != nil {
		t.Errorf("cached GetTLE() error = %v, want nil", err)
	}
}
