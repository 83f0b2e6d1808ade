// Package publish mirrors the materialized assets tree to an object storage bucket.
//
// Publishing runs the same steps as a download with the direction reversed: local
// files are listed, the bucket listing acts as the cache gate, missing files are
// read with bounded concurrency and uploaded. Objects already in the bucket are never
// overwritten, so republishing only ships what is new.
//
// Object keys are the file paths relative to the assets directory, using forward
// slashes and the configured prefix, e.g. "icons/Icon_imp.png".
package publish
