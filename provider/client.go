// Package provider defines the interface for authoritative token-count
// backends.
//
// An authoritative backend returns the exact token count a model's own
// tokenizer would produce, usually by asking a remote service. Backends are
// optional: when one is missing, slow, or failing, callers fall back to the
// local estimator in package tokens.
//
// # Usage
//
// Create a counter using the registry:
//
//	counter, err := provider.New("openai", provider.Config{
//	    APIKey:  os.Getenv("TOKENMASTER_API_KEY"),
//	    BaseURL: "https://api.tu-zi.com/v1",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer counter.Close()
//
//	n, err := counter.CountTokens(ctx, "gemini-2.5-flash", text)
//
// # Available Backends
//
//   - "openai": OpenAI-compatible chat completions, reads usage.prompt_tokens
//   - "relay": relay endpoints that wrap usage in a {code, data} envelope
//   - "tiktoken": local BPE encoding for OpenAI models
//
// Import package providers to register all of them.
package provider

import "context"

// Counter returns authoritative token counts.
// Implementations must be safe for concurrent use.
type Counter interface {
	// CountTokens returns the number of tokens text occupies for the model.
	// The context controls cancellation and timeouts.
	CountTokens(ctx context.Context, model, text string) (int, error)

	// Backend returns the backend name (e.g., "openai", "tiktoken").
	Backend() string

	// Close releases any resources held by the counter.
	Close() error
}

// CounterFunc adapts a function to the Counter interface.
type CounterFunc func(ctx context.Context, model, text string) (int, error)

// CountTokens calls f.
func (f CounterFunc) CountTokens(ctx context.Context, model, text string) (int, error) {
	return f(ctx, model, text)
}

// Backend implements Counter.
func (f CounterFunc) Backend() string { return "func" }

// Close implements Counter.
func (f CounterFunc) Close() error { return nil }

// ModelSupporter is implemented by counters that serve only some models.
// Callers route a model to such a counter exactly when Supports is true.
type ModelSupporter interface {
	Supports(model string) bool
}
