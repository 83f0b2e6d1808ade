// Package manifest serves the script manifest over HTTP.
//
// # HTTP Endpoints
//
//   - GET /manifest : summary of static/scripts.json (last update, counts per source).
//   - GET /manifest/scripts : every script of the manifest; ?source= filters by provenance.
//   - GET /manifest/scripts/:pk : one script.
//
// The manifest is read from disk on every request, so a fetch run that rewrites it
// is visible without restarting the server.
package manifest
