// Package middleware contains HTTP middleware for the serve command.
//
//   - auth: API key validation; disabled when no key is configured.
//   - rayid: a request id (ray id) on every request, echoed in the response
//     headers and attached to request logs.
package middleware
