package counting

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/randalmurphal/tokenmaster/model"
	"github.com/randalmurphal/tokenmaster/tokens"
)

// Entry is one model's row in a Comparison.
type Entry struct {
	Model         model.ID       `json:"model"`
	Name          string         `json:"name"`
	Provider      model.Provider `json:"provider,omitempty"`
	Color         string         `json:"color"`
	Tokens        int            `json:"tokens"`
	Source        Source         `json:"source"`
	ContextWindow int            `json:"context_window"`

	// FillPercent is Tokens as a percentage of ContextWindow. It is not
	// clamped, so text over the window reads above 100.
	FillPercent float64 `json:"fill_percent"`

	Err error `json:"-"`
}

// Comparison holds counts of one text across several models.
type Comparison struct {
	Characters int     `json:"characters"`
	Entries    []Entry `json:"entries"`
}

// Compare counts text for every id concurrently. With no ids it compares
// the whole catalog. Entries keep the order of ids. Empty text yields an
// empty comparison.
func (s *Service) Compare(ctx context.Context, text string, ids ...model.ID) Comparison {
	if text == "" {
		return Comparison{}
	}
	if len(ids) == 0 {
		ids = model.IDs()
	}

	entries := make([]Entry, len(ids))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			entries[i] = s.entry(ctx, id, text)
			return nil
		})
	}
	_ = g.Wait()

	return Comparison{
		Characters: Stats(text).Characters,
		Entries:    entries,
	}
}

func (s *Service) entry(ctx context.Context, id model.ID, text string) Entry {
	res := s.Count(ctx, id, text)
	e := Entry{
		Model:  id,
		Name:   string(id),
		Color:  model.DefaultColor,
		Tokens: res.Tokens,
		Source: res.Source,
		Err:    res.Err,
	}

	if info, ok := model.Lookup(id); ok {
		e.Name = info.Name
		e.Provider = info.Provider
		e.Color = info.Provider.Color()
		e.ContextWindow = info.ContextWindow
		e.FillPercent = tokens.BudgetFor(id).FillPercent(res.Tokens)
	}
	return e
}

// Largest returns the entry with the most tokens, or false when empty.
func (c Comparison) Largest() (Entry, bool) {
	if len(c.Entries) == 0 {
		return Entry{}, false
	}
	best := c.Entries[0]
	for _, e := range c.Entries[1:] {
		if e.Tokens > best.Tokens {
			best = e
		}
	}
	return best, true
}
