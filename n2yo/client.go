// Package n2yo is a typed client for the N2YO satellite-tracking REST API.
// Every operation runs the same pipeline: validate arguments, consult the
// in-memory response cache, pass the sliding-window rate limiter, execute the
// HTTP request, classify the outcome, and cache successful payloads under a
// per-endpoint TTL policy.
package n2yo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/signalsfoundry/satwatch/catalog"
	"github.com/signalsfoundry/satwatch/internal/cache"
	"github.com/signalsfoundry/satwatch/internal/logging"
	"github.com/signalsfoundry/satwatch/internal/observability"
	"github.com/signalsfoundry/satwatch/internal/ratelimit"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.n2yo.com/rest/v1/satellite"

// Per-endpoint cache TTLs. Orbital elements change slowly; live positions go
// stale within minutes.
const (
	tleTTL          = 30 * time.Minute
	positionsTTL    = 2 * time.Minute
	visualPassesTTL = 10 * time.Minute
	radioPassesTTL  = 10 * time.Minute
	aboveTTL        = 5 * time.Minute
)

// Default client policy.
const (
	DefaultRateCeiling   = 1000 // upstream's documented hourly quota
	defaultCacheCapacity = 128
	defaultSweepInterval = 10 * time.Minute
)

// Client is the facade binding validation, cache key derivation, rate
// limiting, and request execution for every API operation. A Client is safe
// for concurrent use; its cache and rate-limit state are private to the
// instance.
type Client struct {
	exec    *executor
	cache   *cache.Store
	limiter *ratelimit.Limiter
	log     logging.Logger
	metrics *observability.ClientCollector
}

type options struct {
	baseURL       string
	httpc         *http.Client
	logger        logging.Logger
	registerer    prometheus.Registerer
	withMetrics   bool
	rateCeiling   int
	rateQueue     bool
	cacheCapacity int
	cacheMaxTTL   time.Duration
	sweepInterval time.Duration
}

// Option customises client construction.
type Option func(*options)

// WithBaseURL points the client at a different API root. Intended for tests
// and proxies.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient supplies the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) { o.httpc = h }
}

// WithLogger supplies the diagnostic sink. Debug output (request URLs, cache
// hits, queue waits, fallbacks) goes here and never affects control flow.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = logging.FromSlog(l) }
}

// WithMetrics registers the client's Prometheus collectors against reg.
// A nil registerer uses the default registry.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
		o.withMetrics = true
	}
}

// WithRateLimit sets the hourly request ceiling and whether saturated
// requests queue (FIFO) instead of failing immediately. A zero ceiling
// disables limiting.
func WithRateLimit(ceiling int, queue bool) Option {
	return func(o *options) {
		o.rateCeiling = ceiling
		o.rateQueue = queue
	}
}

// WithCacheCapacity bounds the number of cached responses. Zero means
// unbounded.
func WithCacheCapacity(n int) Option {
	return func(o *options) { o.cacheCapacity = n }
}

// WithCacheMaxTTL caps every cache write's TTL regardless of the operation's
// default.
func WithCacheMaxTTL(d time.Duration) Option {
	return func(o *options) { o.cacheMaxTTL = d }
}

// WithCacheSweepInterval sets the period of the background expiry sweep.
func WithCacheSweepInterval(d time.Duration) Option {
	return func(o *options) { o.sweepInterval = d }
}

// New constructs a Client for the given API credential.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errParam("apiKey", "", "API credential must not be empty")
	}

	o := options{
		baseURL:       DefaultBaseURL,
		httpc:         &http.Client{Timeout: 30 * time.Second},
		logger:        logging.Noop(),
		rateCeiling:   DefaultRateCeiling,
		cacheCapacity: defaultCacheCapacity,
		sweepInterval: defaultSweepInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var collector *observability.ClientCollector
	if o.withMetrics {
		var err error
		collector, err = observability.NewClientCollector(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	return &Client{
		exec: &executor{
			httpc:   o.httpc,
			baseURL: o.baseURL,
			apiKey:  apiKey,
			log:     o.logger,
		},
		cache: cache.New(cache.Config{
			Capacity:      o.cacheCapacity,
			MaxTTL:        o.cacheMaxTTL,
			SweepInterval: o.sweepInterval,
		}),
		limiter: ratelimit.New(ratelimit.Config{
			Ceiling: o.rateCeiling,
			Queue:   o.rateQueue,
		}),
		log:     o.logger,
		metrics: collector,
	}, nil
}

// Close stops the cache's background sweep. Safe to call more than once.
func (c *Client) Close() {
	c.cache.Stop()
}

// GetTLE retrieves the two-line element set for a catalog number.
func (c *Client) GetTLE(ctx context.Context, id int) (*TLEResponse, error) {
	const op = "GetTLE"
	if err := validateID(id); err != nil {
		return nil, c.reject(ctx, op, err)
	}

	var out TLEResponse
	if err := c.do(ctx, op, "tle/"+strconv.Itoa(id), tleTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTLEByName resolves a common name through the local catalog table and
// delegates to GetTLE. Unresolved names surface as InvalidParameterError.
func (c *Client) GetTLEByName(ctx context.Context, name string) (*TLEResponse, error) {
	normalized, err := validateSatName(name)
	if err != nil {
		return nil, c.reject(ctx, "GetTLEByName", err)
	}
	id, ok := catalog.ResolveSatellite(normalized)
	if !ok {
		return nil, c.reject(ctx, "GetTLEByName", errParam("name", name, "satellite name not found in the local catalog"))
	}
	c.log.Debug(ctx, "resolved satellite name",
		logging.String("name", normalized),
		logging.Int("id", id),
	)
	return c.GetTLE(ctx, id)
}

// GetPositions predicts ground-relative positions for each of the next
// seconds seconds.
func (c *Client) GetPositions(ctx context.Context, id int, lat, lng, alt float64, seconds int) (*PositionsResponse, error) {
	const op = "GetPositions"
	if err := validateID(id); err != nil {
		return nil, c.reject(ctx, op, err)
	}
	if err := validateObserver(lat, lng, alt); err != nil {
		return nil, c.reject(ctx, op, err)
	}
	if err := validateSeconds(seconds); err != nil {
		return nil, c.reject(ctx, op, err)
	}

	endpoint := fmt.Sprintf("positions/%d/%s/%s/%s/%d",
		id, formatCoord(lat), formatCoord(lng), formatCoord(alt), seconds)

	var out PositionsResponse
	if err := c.do(ctx, op, endpoint, positionsTTL, &out); err != nil {
		return nil, err
	}
	if out.Positions == nil {
		out.Positions = []Position{}
	}
	return &out, nil
}

// GetVisualPasses predicts optically visible passes over the observer within
// the next days days, keeping only passes visible for at least minVisibility
// seconds.
func (c *Client) GetVisualPasses(ctx context.Context, id int, lat, lng, alt float64, days int, minVisibility float64) (*VisualPassesResponse, error) {
	const op = "GetVisualPasses"
	if err := validateID(id); err != nil {
		return nil, c.reject(ctx, op, err)
	}
	if err := validateObserver(lat, lng, alt); err != nil {
		return nil, c.reject(ctx, op, err)
	}
	if err := validateDays(days); err != nil {
		return nil, c.reject(ctx, op, err)
	}
	if err := validateMinVisibility(minVisibility); err != nil {
		return nil, c.reject(ctx, op, err)
	}

	endpoint := fmt.Sprintf("visualpasses/%d/%s/%s/%s/%d/%s",
		id, formatCoord(lat), formatCoord(lng), formatCoord(alt), days, formatCoord(minVisibility))

	var out VisualPassesResponse
	if err := c.do(ctx, op, endpoint, visualPassesTTL, &out); err != nil {
		return nil, err
	}
	if out.Passes == nil {
		out.Passes = []VisualPass{}
		out.Info.PassesCount = 0
	}
	return &out, nil
}

// GetRadioPasses predicts passes above minElevation degrees within the next
// days days, regardless of optical visibility.
func (c *Client) GetRadioPasses(ctx context.Context, id int, lat, lng, alt float64, days int, minElevation float64) (*RadioPassesResponse, error) {
	const op = "GetRadioPasses"
	if err := validateID(id); err != nil {
		return nil, c.reject(ctx, op, err)
	}
	if err := validateObserver(lat, lng, alt); err != nil {
		return nil, c.reject(ctx, op, err)
	}
	if err := validateDays(days); err != nil {
		return nil, c.reject(ctx, op, err)
	}
	if err := validateMinElevation(minElevation); err != nil {
		return nil, c.reject(ctx, op, err)
	}

	endpoint := fmt.Sprintf("radiopasses/%d/%s/%s/%s/%d/%s",
		id, formatCoord(lat), formatCoord(lng), formatCoord(alt), days, formatCoord(minElevation))

	var out RadioPassesResponse
	if err := c.do(ctx, op, endpoint, radioPassesTTL, &out); err != nil {
		return nil, err
	}
	if out.Passes == nil {
		out.Passes = []RadioPass{}
		out.Info.PassesCount = 0
	}
	return &out, nil
}

// GetAbove lists objects inside a search cone above the observer, optionally
// filtered by category.
func (c *Client) GetAbove(ctx context.Context, lat, lng, alt, radius float64, category int) (*AboveResponse, error) {
	const op = "GetAbove"
	if err := validateObserver(lat, lng, alt); err != nil {
		return nil, c.reject(ctx, op, err)
	}
	if err := validateRadius(radius); err != nil {
		return nil, c.reject(ctx, op, err)
	}
	if err := validateCategory(category); err != nil {
		return nil, c.reject(ctx, op, err)
	}

	endpoint := fmt.Sprintf("above/%s/%s/%s/%s/%d",
		formatCoord(lat), formatCoord(lng), formatCoord(alt), formatCoord(radius), category)

	var out AboveResponse
	if err := c.do(ctx, op, endpoint, aboveTTL, &out); err != nil {
		return nil, err
	}
	if out.Above == nil {
		out.Above = []AboveSatellite{}
	}
	if out.Info.Category == "" {
		if name, ok := catalog.CategoryName(category); ok {
			out.Info.Category = name
		}
	}
	return &out, nil
}

// CategoryName resolves a category identifier through the local table. Pure
// local computation: no network, no cache.
func (c *Client) CategoryName(category int) (string, error) {
	if err := validateCategory(category); err != nil {
		return "", err
	}
	name, ok := catalog.CategoryName(category)
	if !ok {
		return "", errParam("category", category, "unknown category id")
	}
	return name, nil
}

// FormatTimestamp converts an epoch-seconds value to a formatted string in
// the requested IANA zone. An unrecognised zone falls back to UTC with a
// debug notice rather than failing; only a non-finite timestamp is an error.
func (c *Client) FormatTimestamp(ts float64, zone string) (string, error) {
	if err := validateTimestamp(ts); err != nil {
		return "", err
	}

	loc := time.UTC
	if zone != "" && zone != "UTC" {
		parsed, err := time.LoadLocation(zone)
		if err != nil {
			c.log.Debug(context.Background(), "unknown time zone, falling back to UTC",
				logging.String("zone", zone),
				logging.Err(err),
			)
		} else {
			loc = parsed
		}
	}

	return time.Unix(int64(ts), 0).In(loc).Format("2006-01-02 15:04:05 MST"), nil
}

// CacheStats mirrors the cache store's occupancy snapshot.
type CacheStats struct {
	Total    int
	Expired  int
	Valid    int
	Capacity int
}

// RateLimitStats mirrors the limiter's window snapshot.
type RateLimitStats struct {
	Used       int
	Ceiling    int
	QueueDepth int
	CanProceed bool
}

// Stats reports cache and rate-limiter state for diagnostics.
func (c *Client) Stats() (CacheStats, RateLimitStats) {
	cs := c.cache.Stats()
	rs := c.limiter.Stats()
	return CacheStats(cs), RateLimitStats(rs)
}

// ClearCache drops every cached response.
func (c *Client) ClearCache() {
	c.cache.Clear()
}

// do runs the shared pipeline for one network-backed operation: cache check,
// rate-limit admission, execution, payload decode, cache store. out must be
// a pointer to the operation's response type.
func (c *Client) do(ctx context.Context, op, endpoint string, ttl time.Duration, out any) error {
	start := time.Now()
	ctx, span := observability.Tracer().Start(ctx, "n2yo."+op)
	defer span.End()
	span.SetAttributes(attribute.String("satwatch.endpoint", endpoint))

	var opErr error
	defer func() {
		c.observe(op, opErr, time.Since(start))
		if opErr != nil {
			span.SetStatus(codes.Error, opErr.Error())
		}
	}()

	key := cacheKey(endpoint)
	if raw, ok := c.cache.Get(key); ok {
		if body, isBytes := raw.([]byte); isBytes {
			if err := decode(body, out); err == nil {
				c.metrics.ObserveCache(op, true)
				c.log.Debug(ctx, "cache hit", logging.String("key", key))
				return nil
			}
			// A cached entry that no longer decodes is dropped and refetched.
			c.cache.Delete(key)
		}
	}
	c.metrics.ObserveCache(op, false)

	if err := c.limiter.Admit(ctx); err != nil {
		if errors.Is(err, ratelimit.ErrLimited) {
			c.metrics.IncRateLimitRejection()
			opErr = &RateLimitedError{Message: "hourly request ceiling reached"}
			return opErr
		}
		// Caller abandoned a queued request.
		opErr = err
		return opErr
	}
	c.metrics.SetQueueDepth(c.limiter.Stats().QueueDepth)

	body, err := c.exec.get(ctx, endpoint)
	if err != nil {
		opErr = err
		return opErr
	}
	if err := decode(body, out); err != nil {
		opErr = err
		return opErr
	}

	c.cache.Set(key, body, ttl)
	c.log.Debug(ctx, "response cached",
		logging.String("key", key),
		logging.Duration("ttl", ttl),
	)
	return nil
}

// reject reports a pre-network validation failure through the diagnostic and
// metrics channels and returns the error unchanged.
func (c *Client) reject(ctx context.Context, op string, err error) error {
	c.log.Debug(ctx, "validation rejected", logging.String("op", op), logging.Err(err))
	c.observe(op, err, 0)
	return err
}

func (c *Client) observe(op string, err error, elapsed time.Duration) {
	c.metrics.ObserveRequest(op, outcomeFor(err), elapsed.Seconds())
}

func outcomeFor(err error) string {
	if err == nil {
		return observability.OutcomeOK
	}
	var invalid *InvalidParameterError
	var limited *RateLimitedError
	switch {
	case errors.As(err, &invalid):
		return observability.OutcomeInvalidParameter
	case errors.As(err, &limited):
		return observability.OutcomeRateLimited
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return observability.OutcomeCanceled
	default:
		return observability.OutcomeRemoteFailure
	}
}

// formatCoord renders a numeric path segment without trailing zeros.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
