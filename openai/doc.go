// Package openai counts tokens through any OpenAI-compatible chat
// completions endpoint.
//
// A count is obtained by sending the text as a single user message with a
// one-token completion limit and reading usage.prompt_tokens from the reply.
// The prompt count covers the chat template overhead the service adds, so
// it can exceed the bare tokenizer length by a few tokens.
//
// Register the backend by importing the package:
//
//	import _ "github.com/randalmurphal/tokenmaster/openai"
//
//	counter, err := provider.New("openai", provider.Config{
//	    APIKey:  key,
//	    BaseURL: "https://api.openai.com/v1",
//	})
package openai
