// Package tiktoken counts tokens locally with OpenAI's BPE encodings.
//
// Only models whose encoding is public are supported; other models return
// provider.ErrUnsupportedModel so callers fall back to the estimator. The
// "encoding" option forces a specific encoding for every model.
//
// Encodings are loaded on first use and shared across counters. The loader
// fetches the vocabulary once and caches it on disk according to the
// TIKTOKEN_CACHE_DIR environment variable.
package tiktoken
