package tokens

import (
	"testing"

	"github.com/randalmurphal/tokenmaster/model"
)

func TestBudgetFor(t *testing.T) {
	tests := []struct {
		id       model.ID
		expected int
	}{
		{model.GPT4o, 128000},
		{model.Claude35Sonnet, 200000},
		{model.Gemini25Flash, 1048576},
		{model.ID("unknown"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			b := BudgetFor(tt.id)
			if b.Total != tt.expected {
				t.Errorf("BudgetFor(%s).Total = %d, expected %d", tt.id, b.Total, tt.expected)
			}
			if b.Reserved != 0 {
				t.Errorf("BudgetFor(%s).Reserved = %d, expected 0", tt.id, b.Reserved)
			}
		})
	}
}

func TestBudget_Fits(t *testing.T) {
	b := NewBudget(1000).WithReserved(100) // 900 available

	tests := []struct {
		name     string
		tokens   int
		expected bool
	}{
		{name: "zero fits", tokens: 0, expected: true},
		{name: "within limit fits", tokens: 500, expected: true},
		{name: "exact limit fits", tokens: 900, expected: true},
		{name: "into reservation does not fit", tokens: 901, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Fits(tt.tokens); got != tt.expected {
				t.Errorf("Fits(%d) = %v, expected %v", tt.tokens, got, tt.expected)
			}
		})
	}
}

func TestBudget_Remaining(t *testing.T) {
	b := NewBudget(1000).WithReserved(100)

	tests := []struct {
		name     string
		used     int
		expected int
	}{
		{name: "none used", used: 0, expected: 900},
		{name: "some used", used: 400, expected: 500},
		{name: "all used", used: 900, expected: 0},
		{name: "over budget returns zero", used: 5000, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Remaining(tt.used); got != tt.expected {
				t.Errorf("Remaining(%d) = %d, expected %d", tt.used, got, tt.expected)
			}
		})
	}
}

func TestBudget_FillPercent(t *testing.T) {
	b := BudgetFor(model.GPT4o)

	if got := b.FillPercent(64000); got != 50 {
		t.Errorf("FillPercent(64000) = %v, expected 50", got)
	}
	if got := b.FillPercent(256000); got != 200 {
		t.Errorf("FillPercent(256000) = %v, expected 200 (unclamped)", got)
	}
	if got := (Budget{}).FillPercent(10); got != 0 {
		t.Errorf("zero budget FillPercent = %v, expected 0", got)
	}
}

func TestBudget_WithReserved(t *testing.T) {
	b := NewBudget(100)

	if got := b.WithReserved(-5).Reserved; got != 0 {
		t.Errorf("negative reservation should clamp to 0, got %d", got)
	}
	if got := b.WithReserved(500).Available(); got != 0 {
		t.Errorf("over-reserved budget Available() = %d, expected 0", got)
	}
	if b.Reserved != 0 {
		t.Error("WithReserved should not modify the receiver")
	}
}
