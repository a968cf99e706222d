package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openailib "github.com/sashabaranov/go-openai"

	"github.com/randalmurphal/tokenmaster/provider"
)

// BackendName is the registry name of this backend.
const BackendName = "openai"

// Counter implements provider.Counter against an OpenAI-compatible API.
type Counter struct {
	client      *openailib.Client
	timeout     time.Duration
	maxRetries  int
	temperature float32
	retryWait   time.Duration
}

// NewCounter creates a Counter from cfg. An API key is required.
func NewCounter(cfg provider.Config) (*Counter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	clientConfig := openailib.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Counter{
		client:      openailib.NewClientWithConfig(clientConfig),
		timeout:     cfg.Timeout,
		maxRetries:  cfg.MaxRetries,
		temperature: float32(cfg.GetFloatOption("temperature", 0)),
		retryWait:   500 * time.Millisecond,
	}, nil
}

// CountTokens implements provider.Counter.
func (c *Counter) CountTokens(ctx context.Context, model, text string) (int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := openailib.ChatCompletionRequest{
		Model: model,
		Messages: []openailib.ChatCompletionMessage{
			{Role: openailib.ChatMessageRoleUser, Content: text},
		},
		Temperature: c.temperature,
	}
	if isReasoningModel(model) {
		req.MaxCompletionTokens = 1
	} else {
		req.MaxTokens = 1
	}

	var resp openailib.ChatCompletionResponse
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		resp, lastErr = c.client.CreateChatCompletion(ctx, req)
		if lastErr == nil {
			break
		}
		lastErr = classify(lastErr)
		if attempt == c.maxRetries || !provider.IsRetryable(lastErr) {
			return 0, lastErr
		}

		wait := time.Duration(attempt+1) * c.retryWait
		slog.Debug("retrying token count",
			slog.String("backend", BackendName),
			slog.String("model", model),
			slog.Int("attempt", attempt+1),
			slog.Duration("wait", wait),
			slog.Any("error", lastErr))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return 0, provider.NewError(BackendName, "count", ctx.Err(), true)
		}
	}
	if lastErr != nil {
		return 0, lastErr
	}

	if resp.Usage.PromptTokens <= 0 {
		return 0, provider.NewError(BackendName, "count", provider.ErrMalformedResponse, false)
	}
	return resp.Usage.PromptTokens, nil
}

// isReasoningModel reports models that reject max_tokens in favour of
// max_completion_tokens.
func isReasoningModel(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

// classify maps go-openai errors onto provider sentinels.
func classify(err error) error {
	var apiErr *openailib.APIError
	if errors.As(err, &apiErr) {
		return wrapStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openailib.RequestError
	if errors.As(err, &reqErr) {
		return wrapStatus(reqErr.HTTPStatusCode, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return provider.NewError(BackendName, "count", provider.ErrTimeout, true)
	}
	if errors.Is(err, context.Canceled) {
		return provider.NewError(BackendName, "count", err, false)
	}
	return provider.NewError(BackendName, "count", fmt.Errorf("%w: %v", provider.ErrUnavailable, err), true)
}

func wrapStatus(status int, cause error) error {
	sentinel := provider.ErrorForStatus(status)
	if sentinel == nil {
		sentinel = provider.ErrMalformedResponse
	}
	return provider.NewError(BackendName, "count",
		fmt.Errorf("%w: %v", sentinel, cause), provider.IsRetryable(sentinel))
}

// Backend implements provider.Counter.
func (c *Counter) Backend() string { return BackendName }

// Close implements provider.Counter.
func (c *Counter) Close() error { return nil }
