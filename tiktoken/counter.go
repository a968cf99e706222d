package tiktoken

import (
	"context"
	"fmt"
	"sync"

	tiktokenlib "github.com/pkoukk/tiktoken-go"

	"github.com/randalmurphal/tokenmaster/model"
	"github.com/randalmurphal/tokenmaster/provider"
)

// BackendName is the registry name of this backend.
const BackendName = "tiktoken"

// modelEncodings maps catalog models to their public encodings.
var modelEncodings = map[model.ID]string{
	model.GPT4o: "o200k_base",
	model.GPT5:  "o200k_base",
}

var (
	encodingsMu sync.Mutex
	encodings   = make(map[string]*tiktokenlib.Tiktoken)
)

// Counter implements provider.Counter with local BPE encodings.
type Counter struct {
	forced string
}

// NewCounter creates a Counter. The API key and base URL are ignored.
func NewCounter(cfg provider.Config) (*Counter, error) {
	return &Counter{forced: cfg.GetStringOption("encoding", "")}, nil
}

// EncodingFor returns the encoding name used for a model.
func (c *Counter) EncodingFor(id string) (string, error) {
	if c.forced != "" {
		return c.forced, nil
	}
	if enc, ok := modelEncodings[model.ID(id)]; ok {
		return enc, nil
	}
	return "", provider.NewError(BackendName, "count",
		fmt.Errorf("%w: %s", provider.ErrUnsupportedModel, id), false)
}

// Supports reports whether the model has a known encoding. A forced
// encoding does not widen the set.
func (c *Counter) Supports(id string) bool {
	_, ok := modelEncodings[model.ID(id)]
	return ok
}

// CountTokens implements provider.Counter.
func (c *Counter) CountTokens(ctx context.Context, id, text string) (int, error) {
	name, err := c.EncodingFor(id)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, provider.NewError(BackendName, "count", err, false)
	}

	enc, err := loadEncoding(name)
	if err != nil {
		return 0, provider.NewError(BackendName, "count",
			fmt.Errorf("%w: load %s: %v", provider.ErrUnavailable, name, err), false)
	}
	return len(enc.Encode(text, nil, nil)), nil
}

func loadEncoding(name string) (*tiktokenlib.Tiktoken, error) {
	encodingsMu.Lock()
	defer encodingsMu.Unlock()

	if enc, ok := encodings[name]; ok {
		return enc, nil
	}
	enc, err := tiktokenlib.GetEncoding(name)
	if err != nil {
		return nil, err
	}
	encodings[name] = enc
	return enc, nil
}

// Backend implements provider.Counter.
func (c *Counter) Backend() string { return BackendName }

// Close implements provider.Counter.
func (c *Counter) Close() error { return nil }
