package service

import (
	"context"
	"errors"
	"fmt"

	"proculator/internal/features/pincode/domain"
	"proculator/internal/features/pincode/ports"
)

// ErrPincodeNotFound is returned when the pincode is unknown to the upstream
// directory.
var ErrPincodeNotFound = errors.New("pincode not found")

// LookupService resolves pincodes through the configured provider.
type LookupService struct {
	provider ports.LookupProvider
}

// NewLookupService creates a new LookupService.
func NewLookupService(provider ports.LookupProvider) *LookupService {
	return &LookupService{
		provider: provider,
	}
}

// Lookup resolves a pincode to its city/state pair.
func (s *LookupService) Lookup(ctx context.Context, pincode string) (*domain.Location, error) {
	loc, err := s.provider.Lookup(ctx, pincode)
	if err != nil {
		return nil, fmt.Errorf("failed to look up pincode: %w", err)
	}
	if loc == nil {
		return nil, ErrPincodeNotFound
	}
	return loc, nil
}
