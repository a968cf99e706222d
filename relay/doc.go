// Package relay counts tokens through an API relay that wraps chat
// completion responses in a {code, data} envelope.
//
// The request is a non-streaming chat completion carrying the text as one
// user message plus a count_tokens flag. Relays that honour the flag answer
// without generating; the count is read from data.usage.prompt_tokens, or
// from a top-level usage block when the relay passes the upstream reply
// through unwrapped.
package relay
