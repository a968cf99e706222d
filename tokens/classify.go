package tokens

// CJK ideograph range recognised by the classifier. This is the original
// CJK Unified Ideographs allocation; U+9FA6–U+9FFF, the extension blocks,
// kana and Hangul all count as other.
const (
	CJKRangeStart rune = 0x4E00
	CJKRangeEnd   rune = 0x9FA5
)

// Composition is the script breakdown of a text, in runes.
// CJK + Other always equals utf8.RuneCountInString of the classified text.
type Composition struct {
	CJK   int `json:"cjk"`
	Other int `json:"other"`
}

// Total returns the number of runes classified.
func (c Composition) Total() int {
	return c.CJK + c.Other
}

// Classify splits the runes of text into CJK ideographs and everything else.
// Invalid UTF-8 bytes are each counted as one other rune.
func Classify(text string) Composition {
	var c Composition
	for _, r := range text {
		if IsCJK(r) {
			c.CJK++
		} else {
			c.Other++
		}
	}
	return c
}

// IsCJK reports whether r falls in the recognised CJK ideograph range.
func IsCJK(r rune) bool {
	return r >= CJKRangeStart && r <= CJKRangeEnd
}
