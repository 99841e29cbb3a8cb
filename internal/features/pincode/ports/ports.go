package ports

import (
	"context"

	"proculator/internal/features/pincode/domain"
)

// LookupProvider resolves a postal pincode to its city/state pair.
type LookupProvider interface {
	// Lookup returns the location for a pincode, or nil when the pincode is
	// unknown to the upstream directory. A nil location with a nil error is
	// not a failure.
	Lookup(ctx context.Context, pincode string) (*domain.Location, error)
}
