package truncate

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/tokenmaster/model"
	"github.com/randalmurphal/tokenmaster/tokens"
)

// Strategy defines which part of the text is dropped.
type Strategy int

const (
	// End drops content from the end (default).
	End Strategy = iota

	// Middle drops content from the middle, keeping start and end.
	Middle

	// Start drops content from the start.
	Start
)

var strategyNames = map[Strategy]string{
	End:    "end",
	Middle: "middle",
	Start:  "start",
}

// String returns the strategy name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses "end", "middle" or "start". Empty selects End.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "end":
		return End, nil
	case "middle":
		return Middle, nil
	case "start":
		return Start, nil
	default:
		return End, fmt.Errorf("unknown truncation strategy %q (want end, middle or start)", name)
	}
}

// Default markers inserted where content was dropped.
const (
	DefaultEndMarker    = "..."
	DefaultMiddleMarker = "\n...[content truncated]...\n"
	DefaultStartMarker  = "..."
)

// Result is the outcome of a truncation.
type Result struct {
	Text      string `json:"text"`
	Truncated bool   `json:"truncated"`

	// Tokens is the counter's count for Text.
	Tokens int `json:"tokens"`
}

// Truncator shortens text to a token limit.
type Truncator struct {
	counter  tokens.Counter
	strategy Strategy
	marker   string
}

// New creates a truncator that counts with id's estimator profile.
func New(id model.ID, strategy Strategy) *Truncator {
	marker := DefaultEndMarker
	switch strategy {
	case Middle:
		marker = DefaultMiddleMarker
	case Start:
		marker = DefaultStartMarker
	}
	return &Truncator{
		counter:  tokens.NewModelCounter(id),
		strategy: strategy,
		marker:   marker,
	}
}

// WithCounter replaces the token counter.
func (t *Truncator) WithCounter(counter tokens.Counter) *Truncator {
	t.counter = counter
	return t
}

// WithMarker sets the text inserted where content was dropped.
func (t *Truncator) WithMarker(marker string) *Truncator {
	t.marker = marker
	return t
}

// Strategy returns the truncator's strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// Marker returns the truncation marker.
func (t *Truncator) Marker() string {
	return t.marker
}

// Truncate reduces text to at most maxTokens. When even the marker does
// not fit, the result is empty.
func (t *Truncator) Truncate(text string, maxTokens int) Result {
	if t.counter.FitsInLimit(text, maxTokens) {
		return Result{Text: text, Tokens: t.counter.Count(text)}
	}

	budget := maxTokens - t.counter.Count(t.marker)
	var out string
	switch {
	case budget < 0:
		out = ""
	case t.strategy == Middle:
		out = t.keepBothEnds([]rune(text), budget)
	case t.strategy == Start:
		out = t.marker + string(t.keepTail([]rune(text), budget))
	default:
		out = string(t.keepHead([]rune(text), budget)) + t.marker
	}
	return Result{Text: out, Truncated: true, Tokens: t.counter.Count(out)}
}

// keepHead returns the longest prefix within budget.
func (t *Truncator) keepHead(runes []rune, budget int) []rune {
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if t.counter.FitsInLimit(string(runes[:mid]), budget) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return runes[:low]
}

// keepTail returns the longest suffix within budget.
func (t *Truncator) keepTail(runes []rune, budget int) []rune {
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high) / 2
		if t.counter.FitsInLimit(string(runes[mid:]), budget) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return runes[low:]
}

// keepBothEnds spends half the budget on the head and whatever the head
// left unused on the tail.
func (t *Truncator) keepBothEnds(runes []rune, budget int) string {
	head := t.keepHead(runes, budget/2)
	rest := runes[len(head):]
	tail := t.keepTail(rest, budget-t.counter.Count(string(head)))

	var sb strings.Builder
	sb.WriteString(string(head))
	sb.WriteString(t.marker)
	sb.WriteString(string(tail))
	return sb.String()
}

// ToTokens truncates text from the end to maxTokens for id.
func ToTokens(id model.ID, text string, maxTokens int) string {
	return New(id, End).Truncate(text, maxTokens).Text
}

// ToContext truncates text from the end so it fits id's context window
// with reserved tokens left over. Unknown models have no window and
// return text unchanged.
func ToContext(id model.ID, text string, reserved int) Result {
	budget := tokens.BudgetFor(id).WithReserved(reserved)
	tr := New(id, End)
	if budget.Total == 0 {
		return Result{Text: text, Tokens: tr.counter.Count(text)}
	}
	return tr.Truncate(text, budget.Available())
}
