package ports

import (
	"context"
	"io"

	"proculator/internal/features/serviceability/domain"
)

// TableParser turns an uploaded delimited table into serviceability records.
type TableParser interface {
	// Parse reads the whole table. It returns
	// domain.ErrMissingPincodeColumn when the mandatory column is absent.
	Parse(r io.Reader) (*domain.ParseResult, error)
}

// Repository stores the currently loaded serviceability table.
type Repository interface {
	// Replace atomically swaps the stored table for the given records.
	Replace(ctx context.Context, records map[string]domain.Record) error

	// Get returns the record for a pincode, or nil when the table has no
	// row for it. A nil record with a nil error is not a failure.
	Get(ctx context.Context, pincode string) (*domain.Record, error)

	// Loaded reports whether any table has been ingested.
	Loaded(ctx context.Context) (bool, error)

	// Clear removes the stored table entirely.
	Clear(ctx context.Context) error
}
