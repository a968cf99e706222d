// Package providers registers all authoritative counting backends.
// Import this package to make them available via provider.New():
//
//	import _ "github.com/randalmurphal/tokenmaster/providers"
package providers

import (
	_ "github.com/randalmurphal/tokenmaster/openai"
	_ "github.com/randalmurphal/tokenmaster/relay"
	_ "github.com/randalmurphal/tokenmaster/tiktoken"
)
