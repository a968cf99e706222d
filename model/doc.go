// Package model defines the closed set of models tokenmaster compares.
//
// Each model has an ID (the identifier passed to estimators and counting
// backends), a display name, a Provider, and a context window size:
//
//	info, ok := model.Lookup(model.Qwen3)
//	fmt.Println(info.Name, info.ContextWindow) // Qwen 3 (Preview) 128000
//
// Supported returns every model in display order. Models whose Estimated flag
// is false (the Gemini family) are counted by an authoritative backend when
// one is configured; every other model is always estimated locally.
//
// User input can be normalized with NormalizeID and ParseIDs. The set is not
// extensible at runtime.
package model
