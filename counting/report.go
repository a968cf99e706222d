package counting

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/tokenmaster/model"
	"github.com/randalmurphal/tokenmaster/tokens"
)

// TextStats describes the characters of a text.
type TextStats struct {
	Characters int `json:"characters"`
	CJK        int `json:"cjk"`
	Other      int `json:"other"`
}

// Stats counts the characters of text in runes.
func Stats(text string) TextStats {
	c := tokens.Classify(text)
	return TextStats{Characters: c.Total(), CJK: c.CJK, Other: c.Other}
}

const reportRule = "---------------------"

// Report renders the plain-text analysis summary for the clipboard.
// The model's display name is used when it is in the catalog.
func Report(id model.ID, tokenCount, characters int) string {
	name := string(id)
	if info, ok := model.Lookup(id); ok {
		name = info.Name
	}

	var b strings.Builder
	b.WriteString("TokenMaster Analysis:\n")
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Model: %s\n", name)
	fmt.Fprintf(&b, "Tokens: %d\n", tokenCount)
	fmt.Fprintf(&b, "Characters: %d\n", characters)
	b.WriteString(reportRule)
	return b.String()
}

// FormatFill renders a context-window percentage with two decimals.
// Values under 0.01 render as "< 0.01%".
func FormatFill(percent float64) string {
	if percent < 0.01 {
		return "< 0.01%"
	}
	return fmt.Sprintf("%.2f%%", percent)
}
