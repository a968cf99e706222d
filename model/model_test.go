package model

import (
	"testing"
)

func TestSupported_Order(t *testing.T) {
	want := []ID{
		Gemini25Flash, Gemini3ProPreview, GPT4o, GPT5, Claude35Sonnet,
		DeepSeekV3, Qwen25, Qwen3, Qwen3VL, Llama31,
	}

	got := IDs()
	if len(got) != len(want) {
		t.Fatalf("IDs() returned %d models, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSupported_ReturnsCopy(t *testing.T) {
	models := Supported()
	models[0].Name = "mutated"

	info, ok := Lookup(models[0].ID)
	if !ok {
		t.Fatalf("Lookup(%s) not found", models[0].ID)
	}
	if info.Name == "mutated" {
		t.Error("Supported() should return a copy of the catalog")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		id            ID
		name          string
		provider      Provider
		contextWindow int
		estimated     bool
	}{
		{Gemini25Flash, "Gemini 2.5 Flash", ProviderGoogle, 1048576, false},
		{Gemini3ProPreview, "Gemini 3.0 Pro", ProviderGoogle, 2097152, false},
		{GPT4o, "GPT-4o", ProviderOpenAI, 128000, true},
		{GPT5, "GPT-5 (Preview)", ProviderOpenAI, 128000, true},
		{Claude35Sonnet, "Claude 3.5 Sonnet", ProviderAnthropic, 200000, true},
		{DeepSeekV3, "DeepSeek V3", ProviderDeepSeek, 128000, true},
		{Qwen25, "Qwen 2.5", ProviderAlibaba, 128000, true},
		{Qwen3, "Qwen 3 (Preview)", ProviderAlibaba, 128000, true},
		{Qwen3VL, "Qwen 3 VL", ProviderAlibaba, 128000, true},
		{Llama31, "Llama 3.1", ProviderMeta, 128000, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			info, ok := Lookup(tt.id)
			if !ok {
				t.Fatalf("Lookup(%s) not found", tt.id)
			}
			if info.Name != tt.name {
				t.Errorf("Name = %q, want %q", info.Name, tt.name)
			}
			if info.Provider != tt.provider {
				t.Errorf("Provider = %s, want %s", info.Provider, tt.provider)
			}
			if info.ContextWindow != tt.contextWindow {
				t.Errorf("ContextWindow = %d, want %d", info.ContextWindow, tt.contextWindow)
			}
			if info.Estimated != tt.estimated {
				t.Errorf("Estimated = %v, want %v", info.Estimated, tt.estimated)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("unknown-model-xyz"); ok {
		t.Error("Lookup of unknown model should fail")
	}
	if IsKnown("") {
		t.Error("empty ID should not be known")
	}
	if !IsKnown(DefaultModel) {
		t.Error("DefaultModel should be in the catalog")
	}
}

func TestProviderColor(t *testing.T) {
	tests := []struct {
		provider Provider
		expected string
	}{
		{ProviderGoogle, "#0ea5e9"},
		{ProviderOpenAI, "#10b981"},
		{ProviderAnthropic, "#f97316"},
		{ProviderDeepSeek, "#6366f1"},
		{ProviderAlibaba, "#8b5cf6"},
		{ProviderMeta, "#3b82f6"},
		{Provider("Mistral"), DefaultColor},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			if got := tt.provider.Color(); got != tt.expected {
				t.Errorf("Color() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		input    string
		expected ID
	}{
		{"gpt-4o", GPT4o},
		{"  GPT-4o ", GPT4o},
		{"Qwen-3-VL", Qwen3VL},
		{"custom-model", ID("custom-model")},
		{"", ID("")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeID(tt.input); got != tt.expected {
				t.Errorf("NormalizeID(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseIDs(t *testing.T) {
	got := ParseIDs("gpt-4o, QWEN-3,,llama-3.1 ")
	want := []ID{GPT4o, Qwen3, Llama31}

	if len(got) != len(want) {
		t.Fatalf("ParseIDs returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseIDs()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if ids := ParseIDs(""); len(ids) != 0 {
		t.Errorf("ParseIDs(\"\") = %v, want empty", ids)
	}
}

func TestCatalog_ContextWindowsPositive(t *testing.T) {
	for _, m := range Supported() {
		if m.ContextWindow <= 0 {
			t.Errorf("%s has non-positive context window %d", m.ID, m.ContextWindow)
		}
	}
}
