package scripts

import (
	"context"

	"botc-assets/core/record"
)

// Catalog is the remote script source.
type Catalog interface {
	FetchAll(ctx context.Context) ([]record.Record, error)
	FetchRecord(ctx context.Context, id string) (record.Record, error)
}
