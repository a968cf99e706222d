// Package tokens estimates LLM token counts without running a tokenizer.
//
// Estimation works in two steps. Classify partitions the runes of a text into
// CJK ideographs (U+4E00–U+9FA5) and everything else. Estimate then weights
// each class by a per-model Profile and rounds up:
//
//	tokens = ceil(cjk*profile.CJK + other*profile.NonCJK)
//
// For one-off estimates, use the convenience function:
//
//	n := tokens.EstimateTokens("qwen-3", "你好world") // 3
//
// # Ratio Profiles
//
// Profiles are looked up by exact identifier match in a fixed table grouped
// by tokenizer family (GPT, Claude, DeepSeek/Qwen, Llama). Identifiers that
// are not in the table, including the Gemini models and arbitrary strings,
// use DefaultProfile rather than failing:
//
//	p, ok := tokens.ProfileFor("unknown-model-xyz") // DefaultProfile, false
//
// # Counter
//
// ModelCounter binds a profile to the Counter interface:
//
//	counter := tokens.NewModelCounter(model.DeepSeekV3)
//	counter.Count("你好")                 // 1
//	counter.FitsInLimit(text, 128000)
//
// # Budget
//
// Budget relates a count to a model's context window:
//
//	b := tokens.BudgetFor(model.GPT4o)
//	b.FillPercent(64000) // 50
//
// Every function in this package is pure and safe for concurrent use.
package tokens
