package service

import (
	"context"
	"errors"
	"testing"

	"proculator/internal/features/rating/domain"
	svcdomain "proculator/internal/features/serviceability/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockServiceabilitySource is a mock implementation of ServiceabilitySource
// for testing.
type mockServiceabilitySource struct {
	loaded      bool
	records     map[string]svcdomain.Record
	loadedError error
	findError   error
}

// Loaded implements ServiceabilitySource.
func (m *mockServiceabilitySource) Loaded(ctx context.Context) (bool, error) {
	if m.loadedError != nil {
		return false, m.loadedError
	}
	return m.loaded, nil
}

// Find implements ServiceabilitySource.
func (m *mockServiceabilitySource) Find(ctx context.Context, pincode string) (*svcdomain.Record, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	rec, ok := m.records[pincode]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// newService builds a RatingService on the default tariff data.
func newService(src *mockServiceabilitySource) *RatingService {
	if src == nil {
		return NewRatingService(domain.DefaultZoneMap(), domain.DefaultRateTable(), domain.DefaultSettings(), nil)
	}
	return NewRatingService(domain.DefaultZoneMap(), domain.DefaultRateTable(), domain.DefaultSettings(), src)
}

// quoteRequest builds a resolvable Delhi -> Maharashtra request.
func quoteRequest() QuoteRequest {
	return QuoteRequest{
		Pickup: LocationForm{Pincode: "110001", City: "New Delhi", State: "Delhi"},
		Drop:   LocationForm{Pincode: "400001", City: "Mumbai", State: "Maharashtra"},
		Shipment: domain.ShipmentForm{
			Weight:  "15",
			Length:  "40",
			Breadth: "30",
			Height:  "20",
			Unit:    "cm",
		},
	}
}

// TestRatingService_Quote_Success verifies the reference quote through the
// full service path.
func TestRatingService_Quote_Success(t *testing.T) {
	svc := newService(nil)

	res, err := svc.Quote(context.Background(), quoteRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.ZoneN1, res.PickupZone)
	assert.Equal(t, domain.ZoneW2, res.DropZone)
	assert.InDelta(t, 538.0, res.TotalCost, 0.001)
	assert.False(t, res.ODA, "no serviceability source means never ODA")
}

// TestRatingService_Quote_ZoneIndeterminate verifies the sole precondition
// failure.
func TestRatingService_Quote_ZoneIndeterminate(t *testing.T) {
	svc := newService(nil)

	req := quoteRequest()
	req.Drop.State = "Narnia"

	res, err := svc.Quote(context.Background(), req)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrZoneIndeterminate)

	req = quoteRequest()
	req.Pickup.State = ""

	res, err = svc.Quote(context.Background(), req)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrZoneIndeterminate)
}

// TestRatingService_Quote_MalformedNumbers verifies that bad numeric fields
// quote at the configured floors rather than erroring.
func TestRatingService_Quote_MalformedNumbers(t *testing.T) {
	svc := newService(nil)

	req := quoteRequest()
	req.Shipment = domain.ShipmentForm{Weight: "abc", Length: "", Breadth: "x", Height: ""}

	res, err := svc.Quote(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, res.ChargeableWeight, 0.001, "floor applies to an empty form")
}

// TestRatingService_Quote_ODAFromRecords verifies ODA determination against
// loaded serviceability data.
func TestRatingService_Quote_ODAFromRecords(t *testing.T) {
	src := &mockServiceabilitySource{
		loaded: true,
		records: map[string]svcdomain.Record{
			"110001": {Pincode: "110001", PickupAvailable: true, DeliveryAvailable: true},
			// 400001 absent: drop leg is ODA
		},
	}
	svc := newService(src)

	res, err := svc.Quote(context.Background(), quoteRequest())
	require.NoError(t, err)
	assert.False(t, res.PickupODA)
	assert.True(t, res.DropODA)
	assert.True(t, res.ODA)
	assert.InDelta(t, 800.0, res.ODACharge, 0.001)
}

// TestRatingService_Quote_ZoneOverride verifies that a record's zone beats
// the state-derived zone before the rate lookup.
func TestRatingService_Quote_ZoneOverride(t *testing.T) {
	src := &mockServiceabilitySource{
		loaded: true,
		records: map[string]svcdomain.Record{
			"110001": {Pincode: "110001", PickupAvailable: true, DeliveryAvailable: true},
			"400001": {Pincode: "400001", PickupAvailable: true, DeliveryAvailable: true, Zone: "S1"},
		},
	}
	svc := newService(src)

	res, err := svc.Quote(context.Background(), quoteRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.ZoneS1, res.DropZone)
	// N1->S1 is 14.0, so the 20 kg floor yields 280, clamped to 350.
	assert.InDelta(t, 14.0, res.BaseRatePerKg, 0.001)
}

// TestRatingService_Quote_SourceFailureDegrades verifies that a store failure
// at either stage quotes without ODA data instead of failing or, worse,
// billing the ODA surcharge, and that the degradation is visible on the
// result.
func TestRatingService_Quote_SourceFailureDegrades(t *testing.T) {
	tests := []struct {
		name string
		src  *mockServiceabilitySource
	}{
		{
			name: "loaded check fails",
			src:  &mockServiceabilitySource{loadedError: errors.New("redis down")},
		},
		{
			name: "record lookup fails",
			src:  &mockServiceabilitySource{loaded: true, findError: errors.New("redis timeout")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(tt.src)

			res, err := svc.Quote(context.Background(), quoteRequest())
			require.NoError(t, err)
			assert.False(t, res.ODA, "a store failure must not look like out-of-delivery-area")
			assert.Zero(t, res.ODACharge)
			assert.Contains(t, res.Warnings, odaDegradedWarning)
		})
	}
}

// TestRatingService_Quote_SettingsOverride verifies the per-request settings
// override path.
func TestRatingService_Quote_SettingsOverride(t *testing.T) {
	svc := newService(nil)

	custom := domain.DefaultSettings()
	custom.MinFreight = 1000
	custom.FuelSurchargePct = 0

	req := quoteRequest()
	req.Settings = &custom

	res, err := svc.Quote(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, res.FreightCharge, 0.001)
	assert.Zero(t, res.FuelSurcharge)
}
