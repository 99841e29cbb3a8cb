package service

import (
	"context"
	"errors"

	"proculator/internal/core/logger"
	"proculator/internal/features/rating/domain"
	"proculator/internal/features/rating/ports"
	svcdomain "proculator/internal/features/serviceability/domain"

	"go.uber.org/zap"
)

// ErrZoneIndeterminate is returned when either endpoint's tariff zone cannot
// be resolved. This is the sole quote precondition failure; every other
// input degrades to a safe default.
var ErrZoneIndeterminate = errors.New("tariff zone could not be resolved")

// LocationForm is one leg of a quote request as entered in the form.
type LocationForm struct {
	Pincode string `json:"pincode"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// QuoteRequest is the full input of one quote.
type QuoteRequest struct {
	Pickup   LocationForm        `json:"pickup"`
	Drop     LocationForm        `json:"drop"`
	Shipment domain.ShipmentForm `json:"shipment"`
	Options  domain.Options      `json:"options"`
	// Settings, when present, replaces the default tariff configuration for
	// this one calculation.
	Settings *domain.Settings `json:"settings,omitempty"`
}

// RatingService resolves zones and serviceability for both legs and runs the
// calculation engine. It holds only immutable tariff data; every quote is
// independent.
type RatingService struct {
	zones          domain.ZoneMap
	rates          domain.RateTable
	defaults       domain.Settings
	serviceability ports.ServiceabilitySource
	logger         *zap.Logger
}

// NewRatingService creates a new RatingService. serviceability may be nil
// when no table store is configured; quotes then never carry ODA charges.
func NewRatingService(zones domain.ZoneMap, rates domain.RateTable, defaults domain.Settings, serviceability ports.ServiceabilitySource) *RatingService {
	return &RatingService{
		zones:          zones,
		rates:          rates,
		defaults:       defaults,
		serviceability: serviceability,
		logger:         logger.Named("rating"),
	}
}

// odaDegradedWarning is surfaced on the result whenever the serviceability
// store fails mid-quote and the quote proceeds without ODA data.
const odaDegradedWarning = "serviceability store unavailable; quoted without out-of-delivery-area data"

// Quote computes the itemized cost breakdown for one shipment.
func (s *RatingService) Quote(ctx context.Context, req QuoteRequest) (*domain.CalculationResult, error) {
	loaded := false
	degraded := false
	if s.serviceability != nil {
		var err error
		loaded, err = s.serviceability.Loaded(ctx)
		if err != nil {
			// The table store being unreachable must not block quoting.
			s.logger.Warn("serviceability check failed, quoting without ODA data", zap.Error(err))
			loaded = false
			degraded = true
		}
	}

	pickup, pickupErr := s.resolveEndpoint(ctx, req.Pickup, loaded)
	drop, dropErr := s.resolveEndpoint(ctx, req.Drop, loaded)
	if pickupErr != nil || dropErr != nil {
		// A missing record means ODA; a failed lookup must not. Fall back to
		// quoting without ODA data, like an unreachable store.
		loaded = false
		degraded = true
		pickup, _ = s.resolveEndpoint(ctx, req.Pickup, false)
		drop, _ = s.resolveEndpoint(ctx, req.Drop, false)
	}

	in := domain.QuoteInput{
		Pickup:               pickup,
		Drop:                 drop,
		Shipment:             domain.ParseShipment(req.Shipment),
		Options:              req.Options,
		ServiceabilityLoaded: loaded,
	}

	settings := s.defaults
	if req.Settings != nil {
		settings = *req.Settings
	}

	result := domain.Calculate(in, s.rates, settings)
	if result == nil {
		return nil, ErrZoneIndeterminate
	}
	if degraded {
		result.Warnings = append(result.Warnings, odaDegradedWarning)
	}
	return result, nil
}

// resolveEndpoint builds one engine endpoint: it fetches the serviceability
// record when a table is loaded and applies the zone override. A lookup
// failure is returned to the caller; the endpoint is still usable but carries
// no record, and the caller decides how the quote degrades.
func (s *RatingService) resolveEndpoint(ctx context.Context, loc LocationForm, loaded bool) (domain.Endpoint, error) {
	var sp *domain.ServicePoint
	var findErr error
	if loaded {
		rec, err := s.serviceability.Find(ctx, loc.Pincode)
		if err != nil {
			s.logger.Warn("serviceability lookup failed",
				zap.String("pincode", loc.Pincode), zap.Error(err))
			findErr = err
		} else {
			sp = toServicePoint(rec)
		}
	}

	return domain.Endpoint{
		Pincode: loc.Pincode,
		City:    loc.City,
		State:   loc.State,
		Zone:    domain.ResolveEndpointZone(s.zones, loc.State, sp),
		Record:  sp,
	}, findErr
}

// toServicePoint maps a stored record to the engine's serviceability view.
func toServicePoint(rec *svcdomain.Record) *domain.ServicePoint {
	if rec == nil {
		return nil
	}
	return &domain.ServicePoint{
		PickupAvailable:   rec.PickupAvailable,
		DeliveryAvailable: rec.DeliveryAvailable,
		Zone:              domain.TariffZone(rec.Zone),
		City:              rec.City,
		State:             rec.State,
	}
}
