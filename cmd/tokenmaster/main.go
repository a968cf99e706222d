// Command tokenmaster counts and compares tokens across LLM tokenizers.
//
// Usage:
//
//	# Estimate tokens for the selected model
//	tokenmaster estimate --model gpt-4o "some text"
//
//	# Compare every catalog model, re-counting whenever the file changes
//	tokenmaster compare --file draft.md --watch
//
//	# Trim a document to fit a model's context window
//	tokenmaster fit --model llama-3.1 --max 4000 --strategy middle < input.txt
//
//	# Print the config file JSON Schema
//	tokenmaster config schema
//
// Authoritative counts are fetched from the configured backend
// (TOKENMASTER_BACKEND, or API_KEY for the default relay). The relay and
// openai backends serve the Gemini models; tiktoken serves gpt-4o and gpt-5.
// Every other model, and any failed call, uses the local estimator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
