// Package materialize persists fetched assets to the on-disk cache.
//
// Every file is written through Write, which creates the destination directory
// (idempotently), writes into a temporary sibling and renames it into place. A
// concurrent reader sees either the old file, no file, or the complete new file.
//
// Icons go through a Normalizer (ResizeIcon) before they are written.
package materialize
