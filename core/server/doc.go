// Package server holds the HTTP configuration of the serve command.
//
// The serve command exposes the materialized assets tree, the merged script
// manifest and the run history over HTTP. This package only defines where it
// listens and the optional API key protecting it.
package server
