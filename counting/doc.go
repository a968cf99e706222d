// Package counting combines the local estimator with an optional
// authoritative backend.
//
// Models marked Estimated in the catalog are counted locally and the others
// are sent to the configured provider.Counter. A counter implementing
// provider.ModelSupporter picks its own models instead. If there is no
// counter, or the call fails, the estimate is used. Callers never see an error
// from Count. Failures are logged, recorded in metrics and kept on the
// result for display.
//
//	counter, _ := provider.FromConfig(provider.FromEnv())
//	svc, err := counting.New(counting.WithRemote(counter), counting.WithCacheSize(256))
//	res := svc.Count(ctx, model.Gemini25Flash, text)
//	fmt.Println(res.Tokens, res.Source)
package counting
