package tokens

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/randalmurphal/tokenmaster/model"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		text     string
		expected int
	}{
		{
			name:     "empty text",
			model:    "gpt-4o",
			text:     "",
			expected: 0,
		},
		{
			name:     "ascii on gpt-4o",
			model:    "gpt-4o",
			text:     "hello",
			expected: 2, // ceil(5 * 0.26) = ceil(1.3)
		},
		{
			name:     "cjk on deepseek",
			model:    "deepseek-v3",
			text:     "你好",
			expected: 1, // ceil(2 * 0.45) = ceil(0.9)
		},
		{
			name:     "mixed on qwen-3",
			model:    "qwen-3",
			text:     "你好world",
			expected: 3, // ceil(0.9 + 1.3) = ceil(2.2)
		},
		{
			name:     "unknown model uses default",
			model:    "unknown-model-xyz",
			text:     "abc",
			expected: 1, // ceil(3 * 0.27) = ceil(0.81)
		},
		{
			name:     "claude ascii",
			model:    "claude-3-5-sonnet",
			text:     "hello",
			expected: 2, // ceil(5 * 0.28) = ceil(1.4)
		},
		{
			name:     "llama cjk",
			model:    "llama-3.1",
			text:     "你好世界",
			expected: 3, // ceil(4 * 0.65) = ceil(2.6)
		},
		{
			name:     "gpt-5 cjk",
			model:    "gpt-5",
			text:     "你好",
			expected: 2, // ceil(2 * 0.58) = ceil(1.16)
		},
		{
			name:     "qwen-3-vl shares the qwen profile",
			model:    "qwen-3-vl",
			text:     "你好",
			expected: 1,
		},
		{
			name:     "gemini is not in the ratio table",
			model:    "gemini-2.5-flash",
			text:     "你好",
			expected: 2, // ceil(2 * 0.6) = ceil(1.2)
		},
		{
			name:     "single space still costs a token",
			model:    "gpt-4o",
			text:     " ",
			expected: 1,
		},
		{
			name:     "hiragana counts as other",
			model:    "deepseek-v3",
			text:     "こんにちは",
			expected: 2, // ceil(5 * 0.26), not ceil(5 * 0.45)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EstimateTokens(tt.model, tt.text)
			if result != tt.expected {
				t.Errorf("EstimateTokens(%q, %q) = %d, expected %d", tt.model, tt.text, result, tt.expected)
			}
		})
	}
}

// propertyTexts covers ASCII, CJK, kana, Hangul, emoji, the CJK range edges
// and invalid UTF-8.
var propertyTexts = []string{
	"",
	"a",
	"Hello, World!",
	"你好world",
	"日本語のテキストです",
	"한국어 텍스트",
	"emoji 😀🎉 mixed 中文",
	"一龥龦鿿䷿",
	"\xff\xfe invalid",
	strings.Repeat("上下文 context ", 50),
}

var propertyModels = []string{
	"gpt-4o", "gpt-5", "claude-3-5-sonnet", "deepseek-v3", "qwen-2.5",
	"qwen-3", "qwen-3-vl", "llama-3.1", "gemini-2.5-flash", "unknown-model-xyz", "",
}

func TestEstimateTokens_NonNegativeAndDeterministic(t *testing.T) {
	for _, m := range propertyModels {
		for _, text := range propertyTexts {
			first := EstimateTokens(m, text)
			if first < 0 {
				t.Errorf("EstimateTokens(%q, %q) = %d, expected >= 0", m, text, first)
			}
			if again := EstimateTokens(m, text); again != first {
				t.Errorf("EstimateTokens(%q, %q) not deterministic: %d then %d", m, text, first, again)
			}
		}
		if got := EstimateTokens(m, ""); got != 0 {
			t.Errorf("EstimateTokens(%q, \"\") = %d, expected 0", m, got)
		}
	}
}

func TestEstimateTokens_MonotonicOnAppend(t *testing.T) {
	for _, m := range propertyModels {
		for _, text := range propertyTexts {
			prefix := ""
			prev := 0
			for _, r := range text {
				prefix += string(r)
				cur := EstimateTokens(m, prefix)
				if cur < prev {
					t.Fatalf("EstimateTokens(%q) decreased from %d to %d at %q", m, prev, cur, prefix)
				}
				prev = cur
			}
		}
	}
}

func TestEstimateTokens_UnknownModelMatchesDefault(t *testing.T) {
	// Exact match only: casing variants fall back too.
	unknown := []string{"unknown-model-xyz", "", "GPT-4O", "gpt-4o ", "gemini-3-pro-preview", "qwen3"}

	for _, m := range unknown {
		for _, text := range propertyTexts {
			want := Estimate(Classify(text), DefaultProfile)
			if got := EstimateTokens(m, text); got != want {
				t.Errorf("EstimateTokens(%q, %q) = %d, expected default-profile result %d", m, text, got, want)
			}
		}
	}
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		comp     Composition
		profile  Profile
		expected int
	}{
		{name: "zero composition", comp: Composition{}, profile: DefaultProfile, expected: 0},
		{name: "exact integer", comp: Composition{CJK: 2}, profile: Profile{CJK: 0.5}, expected: 1},
		{name: "rounds up", comp: Composition{Other: 1}, profile: DefaultProfile, expected: 1},
		{name: "zero ratios", comp: Composition{CJK: 3, Other: 3}, profile: Profile{}, expected: 0},
		{name: "negative ratios clamp to zero", comp: Composition{Other: 10}, profile: Profile{NonCJK: -1}, expected: 0},
		// Products rounded separately land just above an integer.
		{name: "separate rounding 3+60", comp: Composition{CJK: 3, Other: 60}, profile: DefaultProfile, expected: 19},
		{name: "separate rounding 1+120", comp: Composition{CJK: 1, Other: 120}, profile: DefaultProfile, expected: 34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Estimate(tt.comp, tt.profile); got != tt.expected {
				t.Errorf("Estimate(%+v, %+v) = %d, expected %d", tt.comp, tt.profile, got, tt.expected)
			}
		})
	}
}

func TestNewModelCounter(t *testing.T) {
	c := NewModelCounter(model.DeepSeekV3)

	if c.Model != model.DeepSeekV3 {
		t.Errorf("expected Model %s, got %s", model.DeepSeekV3, c.Model)
	}
	if c.Profile != (Profile{CJK: 0.45, NonCJK: 0.26}) {
		t.Errorf("unexpected profile %+v", c.Profile)
	}

	if got := NewModelCounter("unknown").Profile; got != DefaultProfile {
		t.Errorf("unknown model profile = %+v, expected DefaultProfile", got)
	}
	if got := NewDefaultCounter().Profile; got != DefaultProfile {
		t.Errorf("NewDefaultCounter profile = %+v, expected DefaultProfile", got)
	}
}

func TestModelCounter_CountMatchesEstimateTokens(t *testing.T) {
	for _, id := range model.IDs() {
		c := NewModelCounter(id)
		for _, text := range propertyTexts {
			if got, want := c.Count(text), EstimateTokens(string(id), text); got != want {
				t.Errorf("%s: Count(%q) = %d, EstimateTokens = %d", id, text, got, want)
			}
		}
	}
}

func TestModelCounter_FitsInLimit(t *testing.T) {
	c := NewModelCounter(model.GPT4o)

	tests := []struct {
		name     string
		text     string
		limit    int
		expected bool
	}{
		{name: "empty fits zero limit", text: "", limit: 0, expected: true},
		{name: "fits exactly", text: "hello", limit: 2, expected: true},
		{name: "fits with room", text: "hello", limit: 10, expected: true},
		{name: "does not fit", text: "hello", limit: 1, expected: false},
		{name: "zero limit", text: "a", limit: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.FitsInLimit(tt.text, tt.limit); got != tt.expected {
				t.Errorf("FitsInLimit(%q, %d) = %v, expected %v", tt.text, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestCounter_Interface(t *testing.T) {
	var _ Counter = (*ModelCounter)(nil)
}

func TestEstimateTokens_LargeText(t *testing.T) {
	text := strings.Repeat("Hello World ", 1000) // 12000 runes
	result := EstimateTokens("gpt-4o", text)

	runes := utf8.RuneCountInString(text)
	if result < runes/4 || result > runes/3 {
		t.Errorf("EstimateTokens for large text = %d, expected ~%d", result, runes*26/100)
	}
}

func BenchmarkEstimateTokens(b *testing.B) {
	text := strings.Repeat("Hello World 你好世界 ", 100)

	b.ResetTimer()
	for range b.N {
		EstimateTokens("qwen-3", text)
	}
}

func BenchmarkModelCounter_Count(b *testing.B) {
	c := NewModelCounter(model.GPT4o)
	text := strings.Repeat("Hello World ", 100)

	b.ResetTimer()
	for range b.N {
		c.Count(text)
	}
}
