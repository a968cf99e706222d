package counting

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/randalmurphal/tokenmaster/model"
	"github.com/randalmurphal/tokenmaster/provider"
	"github.com/randalmurphal/tokenmaster/tokens"
)

// Source says where a count came from.
type Source string

// Count sources.
const (
	SourceEstimate Source = "estimate" // local heuristic, the model has no backend
	SourceRemote   Source = "remote"   // authoritative backend
	SourceCache    Source = "cache"    // earlier authoritative result
	SourceFallback Source = "fallback" // estimate after the backend failed
)

// DefaultTimeout bounds one authoritative call.
const DefaultTimeout = 10 * time.Second

// DefaultConcurrency limits parallel counts in Compare.
const DefaultConcurrency = 4

// Count is the token count for one model.
type Count struct {
	Model  model.ID `json:"model"`
	Tokens int      `json:"tokens"`
	Source Source   `json:"source"`

	// Err is the backend failure behind a SourceFallback count.
	Err error `json:"-"`
}

// Service counts tokens with an optional authoritative backend.
// It is safe for concurrent use.
type Service struct {
	remote      provider.Counter
	cache       *Cache
	cacheSize   int
	metrics     *Metrics
	timeout     time.Duration
	concurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithRemote sets the authoritative backend. A nil counter keeps every
// model on the estimator.
func WithRemote(c provider.Counter) Option {
	return func(s *Service) { s.remote = c }
}

// WithCacheSize caches up to n authoritative counts. Zero disables caching.
func WithCacheSize(n int) Option {
	return func(s *Service) { s.cacheSize = n }
}

// WithCache uses an existing cache, for sharing between services.
func WithCache(c *Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithMetrics records counting activity in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithTimeout bounds each authoritative call.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithConcurrency limits parallel counts in Compare.
func WithConcurrency(n int) Option {
	return func(s *Service) { s.concurrency = n }
}

// New creates a Service.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		timeout:     DefaultTimeout,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.cache == nil && s.cacheSize > 0 {
		c, err := NewCache(s.cacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = c
	}
	if s.concurrency < 1 {
		s.concurrency = 1
	}
	return s, nil
}

// Remote returns the authoritative backend, or nil.
func (s *Service) Remote() provider.Counter {
	return s.remote
}

// Authoritative reports whether counts for id go to the backend.
//
// A backend implementing provider.ModelSupporter decides for itself.
// Otherwise only catalog models without a ratio estimate are routed.
func (s *Service) Authoritative(id model.ID) bool {
	if s.remote == nil {
		return false
	}
	if sup, ok := s.remote.(provider.ModelSupporter); ok {
		return sup.Supports(string(id))
	}
	info, ok := model.Lookup(id)
	return ok && !info.Estimated
}

// Count returns the token count of text for id.
//
// Empty text is 0. Blank text on the authoritative path is 0 without a
// call and reported as SourceEstimate. Backend failures fall back to the estimate and are returned in
// Count.Err with Source set to SourceFallback.
func (s *Service) Count(ctx context.Context, id model.ID, text string) Count {
	if text == "" {
		return Count{Model: id, Source: SourceEstimate}
	}

	if !s.Authoritative(id) {
		res := Count{Model: id, Tokens: tokens.EstimateTokens(string(id), text), Source: SourceEstimate}
		s.metrics.recordCount(string(id), res.Source)
		return res
	}

	if strings.TrimSpace(text) == "" {
		return Count{Model: id, Source: SourceEstimate}
	}

	if n, ok := s.cache.Get(id, text); ok {
		slog.Debug("token count cache hit", slog.String("model", string(id)), slog.Int("tokens", n))
		s.metrics.recordCount(string(id), SourceCache)
		return Count{Model: id, Tokens: n, Source: SourceCache}
	}

	n, err := s.countRemote(ctx, id, text)
	if err != nil {
		est := tokens.EstimateTokens(string(id), text)
		s.logFallback(id, err, est)
		s.metrics.recordFallback(string(id), fallbackReason(err))
		s.metrics.recordCount(string(id), SourceFallback)
		return Count{Model: id, Tokens: est, Source: SourceFallback, Err: err}
	}

	if s.cache.Add(id, text, n) {
		s.metrics.recordEviction()
	}
	s.metrics.recordCount(string(id), SourceRemote)
	return Count{Model: id, Tokens: n, Source: SourceRemote}
}

func (s *Service) countRemote(ctx context.Context, id model.ID, text string) (int, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	n, err := s.remote.CountTokens(ctx, string(id), text)
	s.metrics.recordLatency(s.remote.Backend(), time.Since(start))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, provider.NewError(s.remote.Backend(), "count", provider.ErrMalformedResponse, false)
	}
	return n, nil
}

func (s *Service) logFallback(id model.ID, err error, estimate int) {
	attrs := []any{
		slog.String("model", string(id)),
		slog.String("backend", s.remote.Backend()),
		slog.Int("estimate", estimate),
		slog.Any("error", err),
	}
	if errors.Is(err, provider.ErrUnsupportedModel) {
		slog.Debug("backend cannot count model, using estimate", attrs...)
		return
	}
	slog.Warn("authoritative count failed, using estimate", attrs...)
}

// fallbackReason buckets an error for the fallbacks metric.
func fallbackReason(err error) string {
	switch {
	case errors.Is(err, provider.ErrUnsupportedModel):
		return "unsupported_model"
	case provider.IsAuthError(err):
		return "auth"
	case errors.Is(err, provider.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, provider.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, provider.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, provider.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, provider.ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

// Close releases the backend.
func (s *Service) Close() error {
	if s.remote == nil {
		return nil
	}
	return s.remote.Close()
}
