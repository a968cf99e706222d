package model

import "strings"

// ID identifies a supported model. The string value is the identifier sent to
// counting backends and the key the estimation ratio table is indexed by.
type ID string

// Google models. These have authoritative counts available remotely.
const (
	Gemini25Flash     ID = "gemini-2.5-flash"
	Gemini3ProPreview ID = "gemini-3-pro-preview"
)

// OpenAI models.
const (
	GPT4o ID = "gpt-4o"
	GPT5  ID = "gpt-5" // assumed to share the o200k vocabulary
)

// Anthropic models.
const (
	Claude35Sonnet ID = "claude-3-5-sonnet"
)

// DeepSeek and Alibaba models.
const (
	DeepSeekV3 ID = "deepseek-v3"
	Qwen25     ID = "qwen-2.5"
	Qwen3      ID = "qwen-3"
	Qwen3VL    ID = "qwen-3-vl"
)

// Meta models.
const (
	Llama31 ID = "llama-3.1"
)

// String returns the identifier.
func (id ID) String() string {
	return string(id)
}

// Provider names the vendor behind a model.
type Provider string

// Known providers.
const (
	ProviderGoogle    Provider = "Google"
	ProviderOpenAI    Provider = "OpenAI"
	ProviderAnthropic Provider = "Anthropic"
	ProviderDeepSeek  Provider = "DeepSeek"
	ProviderAlibaba   Provider = "Alibaba"
	ProviderMeta      Provider = "Meta"
)

// DefaultColor is used for providers without an assigned chart color.
const DefaultColor = "#94a3b8"

// Color returns the hex color used when charting the provider's models.
func (p Provider) Color() string {
	switch p {
	case ProviderGoogle:
		return "#0ea5e9"
	case ProviderOpenAI:
		return "#10b981"
	case ProviderAnthropic:
		return "#f97316"
	case ProviderDeepSeek:
		return "#6366f1"
	case ProviderAlibaba:
		return "#8b5cf6"
	case ProviderMeta:
		return "#3b82f6"
	default:
		return DefaultColor
	}
}

// NormalizeID trims and lowercases a user-supplied identifier so that
// "GPT-4o " resolves to GPT4o. Unknown names are returned normalized but
// otherwise unchanged; callers decide whether an unknown ID is acceptable.
func NormalizeID(name string) ID {
	return ID(strings.ToLower(strings.TrimSpace(name)))
}

// ParseIDs splits a comma-separated list of identifiers, normalizing each and
// dropping empty entries.
func ParseIDs(list string) []ID {
	parts := strings.Split(list, ",")
	ids := make([]ID, 0, len(parts))
	for _, p := range parts {
		if id := NormalizeID(p); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
