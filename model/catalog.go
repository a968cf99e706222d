package model

// Info describes a supported model.
type Info struct {
	ID       ID       `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Provider Provider `json:"provider" yaml:"provider"`

	// ContextWindow is the maximum number of tokens the model accepts.
	ContextWindow int `json:"context_window" yaml:"context_window"`

	Description string `json:"description" yaml:"description"`

	// Estimated reports whether counts for this model always come from the
	// local estimator. When false, an authoritative backend is tried first.
	Estimated bool `json:"estimated" yaml:"estimated"`
}

// catalog is in display order.
var catalog = []Info{
	{
		ID:            Gemini25Flash,
		Name:          "Gemini 2.5 Flash",
		Provider:      ProviderGoogle,
		ContextWindow: 1048576,
		Description:   "Fast, cost-efficient, high-volume",
	},
	{
		ID:            Gemini3ProPreview,
		Name:          "Gemini 3.0 Pro",
		Provider:      ProviderGoogle,
		ContextWindow: 2097152,
		Description:   "Best performing, complex reasoning",
	},
	{
		ID:            GPT4o,
		Name:          "GPT-4o",
		Provider:      ProviderOpenAI,
		ContextWindow: 128000,
		Description:   "Industry standard, balanced tokenizer",
		Estimated:     true,
	},
	{
		ID:            GPT5,
		Name:          "GPT-5 (Preview)",
		Provider:      ProviderOpenAI,
		ContextWindow: 128000, // conservative
		Description:   "Anticipated next-gen (uses o200k logic)",
		Estimated:     true,
	},
	{
		ID:            Claude35Sonnet,
		Name:          "Claude 3.5 Sonnet",
		Provider:      ProviderAnthropic,
		ContextWindow: 200000,
		Description:   "Efficient coding & reasoning model",
		Estimated:     true,
	},
	{
		ID:            DeepSeekV3,
		Name:          "DeepSeek V3",
		Provider:      ProviderDeepSeek,
		ContextWindow: 128000,
		Description:   "Optimized for code & CJK content",
		Estimated:     true,
	},
	{
		ID:            Qwen25,
		Name:          "Qwen 2.5",
		Provider:      ProviderAlibaba,
		ContextWindow: 128000,
		Description:   "Highly efficient CJK tokenization",
		Estimated:     true,
	},
	{
		ID:            Qwen3,
		Name:          "Qwen 3 (Preview)",
		Provider:      ProviderAlibaba,
		ContextWindow: 128000,
		Description:   "Next-gen CJK & reasoning optimization",
		Estimated:     true,
	},
	{
		ID:            Qwen3VL,
		Name:          "Qwen 3 VL",
		Provider:      ProviderAlibaba,
		ContextWindow: 128000,
		Description:   "Vision-Language optimized tokenizer",
		Estimated:     true,
	},
	{
		ID:            Llama31,
		Name:          "Llama 3.1",
		Provider:      ProviderMeta,
		ContextWindow: 128000,
		Description:   "Large vocab, standard efficiency",
		Estimated:     true,
	},
}

// DefaultModel is the model selected when none is configured.
const DefaultModel = Gemini25Flash

// Supported returns the supported models in display order.
// The returned slice is a copy and may be modified by the caller.
func Supported() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns the identifiers of all supported models in display order.
func IDs() []ID {
	ids := make([]ID, len(catalog))
	for i, m := range catalog {
		ids[i] = m.ID
	}
	return ids
}

// Lookup returns the catalog entry for id.
func Lookup(id ID) (Info, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Info{}, false
}

// IsKnown reports whether id is in the supported set.
func IsKnown(id ID) bool {
	_, ok := Lookup(id)
	return ok
}
