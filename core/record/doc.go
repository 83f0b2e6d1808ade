// Package record defines script and character records and the merge engine that
// reconciles them across sources.
//
// # Sources and Priority
//
// Records come from three places, each tagged with a Provenance:
//   - homebrew: user-editable overrides (highest priority)
//   - extra: locally authored records
//   - remote: the public script catalog (lowest priority)
//
// Merge takes the sources in descending priority and keeps the first record it sees
// for every key. Locally curated content therefore appears first in the output and
// shadows any remote record sharing its key.
//
// # Usage
//
//	merged, err := record.Merge(homebrew, extra, remote)
//	if err != nil {
//	    return err // *record.ValidationError for a record without a key
//	}
//	for _, r := range merged.Shadowed {
//	    log.Warn("record shadowed", zap.String("pk", r.PK.String()))
//	}
package record
