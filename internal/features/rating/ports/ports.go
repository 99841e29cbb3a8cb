package ports

import (
	"context"

	svcdomain "proculator/internal/features/serviceability/domain"
)

// ServiceabilitySource exposes the loaded serviceability table to quoting.
// The quoting flow never parses or stores tables itself; it only reads
// already-ingested records.
type ServiceabilitySource interface {
	// Loaded reports whether any serviceability table has been ingested.
	// When false, no shipment leg is ever out-of-delivery-area.
	Loaded(ctx context.Context) (bool, error)

	// Find returns the record for a pincode, or nil when the table has no
	// row for it.
	Find(ctx context.Context, pincode string) (*svcdomain.Record, error)
}
