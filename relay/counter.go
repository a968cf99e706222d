package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/randalmurphal/tokenmaster/provider"
)

// BackendName is the registry name of this backend.
const BackendName = "relay"

// DefaultTemperature is sent with every count request.
const DefaultTemperature = 0.7

// maxResponseBytes caps how much of a reply is read.
const maxResponseBytes = 1 << 20

// Counter implements provider.Counter for relay endpoints.
type Counter struct {
	httpClient  *http.Client
	endpoint    string
	apiKey      string
	maxRetries  int
	temperature float64
	countOnly   bool
	retryWait   time.Duration
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type countRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
	CountTokens bool          `json:"count_tokens,omitempty"`
}

type usage struct {
	PromptTokens int `json:"prompt_tokens"`
}

type countResponse struct {
	Code    *int   `json:"code"`
	Message string `json:"message"`
	Data    *struct {
		Usage *usage `json:"usage"`
	} `json:"data"`
	Usage *usage `json:"usage"`
}

// NewCounter creates a Counter from cfg. An API key is required.
func NewCounter(cfg provider.Config) (*Counter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	base := cfg.BaseURL
	if base == "" {
		base = provider.DefaultBaseURL
	}

	return &Counter{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		endpoint:    strings.TrimRight(base, "/") + "/chat/completions",
		apiKey:      cfg.APIKey,
		maxRetries:  cfg.MaxRetries,
		temperature: cfg.GetFloatOption("temperature", DefaultTemperature),
		countOnly:   cfg.GetBoolOption("count_tokens", true),
		retryWait:   500 * time.Millisecond,
	}, nil
}

// CountTokens implements provider.Counter.
func (c *Counter) CountTokens(ctx context.Context, model, text string) (int, error) {
	body, err := json.Marshal(countRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: text}},
		Temperature: c.temperature,
		Stream:      false,
		CountTokens: c.countOnly,
	})
	if err != nil {
		return 0, provider.NewError(BackendName, "count", err, false)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		n, err := c.do(ctx, body)
		if err == nil {
			return n, nil
		}
		lastErr = err
		if attempt == c.maxRetries || !provider.IsRetryable(err) {
			break
		}

		wait := time.Duration(attempt+1) * c.retryWait
		slog.Debug("retrying token count",
			slog.String("backend", BackendName),
			slog.String("model", model),
			slog.Int("attempt", attempt+1),
			slog.Duration("wait", wait),
			slog.Any("error", err))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return 0, provider.NewError(BackendName, "count", ctx.Err(), true)
		}
	}
	return 0, lastErr
}

func (c *Counter) do(ctx context.Context, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, provider.NewError(BackendName, "count", err, false)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return 0, provider.NewError(BackendName, "count", provider.ErrTimeout, true)
		}
		if errors.Is(err, context.Canceled) {
			return 0, provider.NewError(BackendName, "count", err, false)
		}
		return 0, provider.NewError(BackendName, "count",
			fmt.Errorf("%w: %v", provider.ErrUnavailable, err), true)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, provider.NewError(BackendName, "count",
			fmt.Errorf("%w: read body: %v", provider.ErrUnavailable, err), true)
	}

	if statusErr := provider.ErrorForStatus(resp.StatusCode); statusErr != nil {
		return 0, provider.NewError(BackendName, "count",
			fmt.Errorf("%w: status %d: %s", statusErr, resp.StatusCode, snippet(raw)),
			provider.IsRetryable(statusErr))
	}

	return parseCount(raw)
}

// parseCount extracts prompt_tokens from a relay reply.
func parseCount(raw []byte) (int, error) {
	var parsed countResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return 0, provider.NewError(BackendName, "count",
			fmt.Errorf("%w: %v", provider.ErrMalformedResponse, err), false)
	}

	if parsed.Code != nil && *parsed.Code != 0 {
		return 0, provider.NewError(BackendName, "count",
			fmt.Errorf("%w: relay code %d: %s", provider.ErrInvalidRequest, *parsed.Code, parsed.Message), false)
	}

	var u *usage
	switch {
	case parsed.Data != nil && parsed.Data.Usage != nil:
		u = parsed.Data.Usage
	case parsed.Usage != nil:
		u = parsed.Usage
	}
	if u == nil || u.PromptTokens <= 0 {
		return 0, provider.NewError(BackendName, "count", provider.ErrMalformedResponse, false)
	}
	return u.PromptTokens, nil
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

func snippet(raw []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(raw))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

// Backend implements provider.Counter.
func (c *Counter) Backend() string { return BackendName }

// Close implements provider.Counter.
func (c *Counter) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
