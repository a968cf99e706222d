package tiktoken

import "github.com/randalmurphal/tokenmaster/provider"

func init() {
	provider.Register(BackendName, func(cfg provider.Config) (provider.Counter, error) {
		return NewCounter(cfg)
	})
}
