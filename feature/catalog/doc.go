// Package catalog reads scripts from the remote script catalog.
//
// The catalog exposes a paginated listing and a per-script lookup:
//
//	GET {base}/api/scripts/?format=json&page=N   -> {"count", "next", "results"}
//	GET {base}/api/scripts/{id}/?format=json     -> one raw script
//
// Raw scripts are converted into remote records. Any transport, status or decode
// failure while listing is reported as a SourceUnavailableError, which fails the
// category that asked for the listing.
package catalog
