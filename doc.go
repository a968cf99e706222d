// Package tokenmaster estimates and compares LLM token counts.
//
// The module is split into small packages that can be imported on their own:
//
//   - model: the supported models, their providers and context windows
//   - tokens: the character-class estimator and context-window budgets
//   - provider: the interface and registry for authoritative count backends
//   - openai, relay, tiktoken: authoritative backends
//   - providers: imports every backend for registration
//   - counting: estimator plus backend with caching, fallback and metrics
//   - truncate: token-aware truncation to a model's limit
//   - config: config files, .env loading and file watching
//
// # Quick Start
//
// Local estimate, no network:
//
//	import "github.com/randalmurphal/tokenmaster/tokens"
//	n := tokens.EstimateTokens("gpt-4o", "Hello, 世界")
//
// Authoritative counts for Gemini models, falling back to the estimate:
//
//	import (
//	    "github.com/randalmurphal/tokenmaster/counting"
//	    "github.com/randalmurphal/tokenmaster/provider"
//	    _ "github.com/randalmurphal/tokenmaster/providers"
//	)
//
//	remote, _ := provider.FromConfig(provider.FromEnv())
//	svc, _ := counting.New(counting.WithRemote(remote))
//	cmp := svc.Compare(ctx, text)
//
// The estimator never fails: unknown model identifiers use a default
// profile, and any backend error degrades to the estimate.
package tokenmaster
