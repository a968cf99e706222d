// Package truncate shortens text to fit a model's token limit.
//
// Token counts come from the estimator in package tokens, so the limit is
// honoured against the same numbers the rest of tokenmaster reports.
// Searches rely on the estimate never decreasing as text grows.
//
// # Strategies
//
//   - End: keep the beginning, drop the tail (default)
//   - Middle: keep both ends, drop the middle
//   - Start: keep the tail, drop the beginning
//
// # Usage
//
//	tr := truncate.New(model.GPT4o, truncate.Middle)
//	res := tr.Truncate(text, 4000)
//	if res.Truncated {
//	    fmt.Println(res.Tokens, "tokens kept")
//	}
//
// To fill a context window while leaving room for a reply:
//
//	res := truncate.ToContext(model.Claude35Sonnet, text, 8000)
package truncate
