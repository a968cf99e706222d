package tokens

import "github.com/randalmurphal/tokenmaster/model"

// Budget tracks token usage against a model's context window.
type Budget struct {
	// Total is the model's context window.
	Total int

	// Reserved is held back for the response and excluded from Remaining.
	Reserved int
}

// NewBudget creates a budget with the given total and nothing reserved.
func NewBudget(total int) Budget {
	return Budget{Total: total}
}

// BudgetFor creates a budget sized to the model's context window.
// Unknown models get a zero budget, which nothing fits in.
func BudgetFor(id model.ID) Budget {
	info, ok := model.Lookup(id)
	if !ok {
		return Budget{}
	}
	return NewBudget(info.ContextWindow)
}

// WithReserved returns a copy of the budget with the given reservation.
func (b Budget) WithReserved(reserved int) Budget {
	if reserved < 0 {
		reserved = 0
	}
	b.Reserved = reserved
	return b
}

// Available returns the tokens usable for input.
func (b Budget) Available() int {
	avail := b.Total - b.Reserved
	if avail < 0 {
		return 0
	}
	return avail
}

// Fits returns true if the token count fits in the available budget.
func (b Budget) Fits(tokens int) bool {
	return tokens <= b.Available()
}

// Remaining returns the available tokens left after usedTokens.
func (b Budget) Remaining(usedTokens int) int {
	remaining := b.Available() - usedTokens
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FillPercent returns usedTokens as a percentage of the full context window.
// The value is not clamped and exceeds 100 when the text overflows.
func (b Budget) FillPercent(usedTokens int) float64 {
	if b.Total <= 0 {
		return 0
	}
	return float64(usedTokens) / float64(b.Total) * 100
}
