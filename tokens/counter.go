package tokens

import (
	"math"

	"github.com/randalmurphal/tokenmaster/model"
)

// Counter estimates token counts for text.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// Estimate applies a profile to a composition, rounding partial tokens up.
// The result is never negative.
func Estimate(c Composition, p Profile) int {
	if c.Total() == 0 {
		return 0
	}
	// Each product is rounded on its own so no platform fuses them.
	n := math.Ceil(float64(float64(c.CJK)*p.CJK) + float64(float64(c.Other)*p.NonCJK))
	if n <= 0 {
		return 0
	}
	return int(n)
}

// EstimateTokens estimates the token count of text for the given model
// identifier. It never fails: unknown identifiers use DefaultProfile and
// empty text is always 0 tokens.
func EstimateTokens(modelID, text string) int {
	if text == "" {
		return 0
	}
	p, _ := ProfileFor(modelID)
	return Estimate(Classify(text), p)
}

// ModelCounter is a Counter bound to one model's ratio profile.
// It holds no mutable state and is safe for concurrent use.
type ModelCounter struct {
	// Model is the identifier the profile was resolved from.
	Model model.ID

	// Profile is the ratio profile applied to every count.
	Profile Profile
}

// NewModelCounter creates a counter for the given model, falling back to
// DefaultProfile when the model is not in the ratio table.
func NewModelCounter(id model.ID) *ModelCounter {
	p, _ := ProfileFor(string(id))
	return &ModelCounter{Model: id, Profile: p}
}

// NewDefaultCounter creates a counter that uses DefaultProfile.
func NewDefaultCounter() *ModelCounter {
	return &ModelCounter{Profile: DefaultProfile}
}

// Count estimates the number of tokens in the given text.
func (c *ModelCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return Estimate(Classify(text), c.Profile)
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *ModelCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}
