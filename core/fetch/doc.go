// Package fetch implements the bounded concurrent fetcher.
//
// Remote catalogs throttle aggressive clients, while downloading hundreds of icons
// one at a time is too slow. Fetcher runs every fetch through an errgroup with a
// fixed limit, so at most Limit requests are in flight at once.
//
// # Failure Isolation
//
// Each fetch is independent: a failure is logged with the reference identity,
// stored as an *Error in the Results map and otherwise ignored. Nothing is retried
// within a run; the cache gate selects the failed items again on the next run.
//
// # Usage
//
//	f := fetch.New(10, fetch.HTTPGetter{Client: client}.Get, logger)
//	bar := fetch.NewBar(os.Stderr, len(refs), "icons")
//	results := f.Run(ctx, refs, bar.Add)
//	bar.Finish()
package fetch
