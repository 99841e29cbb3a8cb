package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"proculator/internal/features/serviceability/domain"
	"proculator/internal/features/serviceability/ports"
)

// ErrRecordNotFound is returned when the loaded table has no row for a
// pincode.
var ErrRecordNotFound = errors.New("no serviceability record for pincode")

// ServiceabilityService orchestrates table ingestion and record lookups.
type ServiceabilityService struct {
	parser ports.TableParser
	repo   ports.Repository
}

// NewServiceabilityService creates a new ServiceabilityService.
func NewServiceabilityService(parser ports.TableParser, repo ports.Repository) *ServiceabilityService {
	return &ServiceabilityService{
		parser: parser,
		repo:   repo,
	}
}

// Ingest parses an uploaded table and replaces the stored one. The previous
// table survives a parse failure; it is only swapped after a clean parse.
func (s *ServiceabilityService) Ingest(ctx context.Context, r io.Reader) (*domain.ParseResult, error) {
	result, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, result.Records); err != nil {
		return nil, fmt.Errorf("failed to store serviceability table: %w", err)
	}

	return result, nil
}

// Find returns the record for a pincode, or nil when the table has no row
// for it. Callers treating absence as ODA should use this form.
func (s *ServiceabilityService) Find(ctx context.Context, pincode string) (*domain.Record, error) {
	rec, err := s.repo.Get(ctx, pincode)
	if err != nil {
		return nil, fmt.Errorf("failed to look up serviceability record: %w", err)
	}
	return rec, nil
}

// Lookup returns the record for a pincode or ErrRecordNotFound.
func (s *ServiceabilityService) Lookup(ctx context.Context, pincode string) (*domain.Record, error) {
	rec, err := s.Find(ctx, pincode)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrRecordNotFound
	}
	return rec, nil
}

// Loaded reports whether a serviceability table has been ingested.
func (s *ServiceabilityService) Loaded(ctx context.Context) (bool, error) {
	return s.repo.Loaded(ctx)
}

// Clear removes the stored table; quoting then proceeds as if none was ever
// uploaded.
func (s *ServiceabilityService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear serviceability table: %w", err)
	}
	return nil
}
