package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quoteInput builds a resolvable Delhi -> Maharashtra input that individual
// tests mutate.
func quoteInput() QuoteInput {
	return QuoteInput{
		Pickup: Endpoint{
			Pincode: "110001",
			City:    "New Delhi",
			State:   "Delhi",
			Zone:    ZoneN1,
		},
		Drop: Endpoint{
			Pincode: "400001",
			City:    "Mumbai",
			State:   "Maharashtra",
			Zone:    ZoneW2,
		},
		Shipment: Shipment{
			DeadWeight: 15,
			Length:     40,
			Breadth:    30,
			Height:     20,
			Unit:       UnitCentimeter,
		},
	}
}

// TestCalculate_ReferenceScenario verifies the canonical Delhi to Maharashtra
// quote end to end: volumetric 5.33 kg, chargeable 20 kg, freight clamped to
// the 350 minimum, 25% fuel, flat AWB, total 538.
func TestCalculate_ReferenceScenario(t *testing.T) {
	res := Calculate(quoteInput(), DefaultRateTable(), DefaultSettings())
	require.NotNil(t, res)

	assert.Equal(t, ZoneN1, res.PickupZone)
	assert.Equal(t, ZoneW2, res.DropZone)
	assert.InDelta(t, 5.33, res.VolumetricWeight, 0.001)
	assert.InDelta(t, 20.0, res.ChargeableWeight, 0.001)
	assert.InDelta(t, 12.5, res.BaseRatePerKg, 0.001)
	assert.InDelta(t, 350.0, res.FreightCharge, 0.001)
	assert.InDelta(t, 87.5, res.FuelSurcharge, 0.001)
	assert.InDelta(t, 100.0, res.AWBCharge, 0.001)
	assert.Zero(t, res.ODACharge)
	assert.Zero(t, res.HandlingCharge)
	assert.Zero(t, res.RegionalCharge)
	assert.False(t, res.ODA)
	assert.InDelta(t, 538.0, res.TotalCost, 0.001)
}

// TestCalculate_UnresolvedZone verifies that a missing zone on either leg
// yields no result rather than a zero-cost estimate.
func TestCalculate_UnresolvedZone(t *testing.T) {
	in := quoteInput()
	in.Pickup.Zone = ZoneNone
	assert.Nil(t, Calculate(in, DefaultRateTable(), DefaultSettings()))

	in = quoteInput()
	in.Drop.Zone = ZoneNone
	assert.Nil(t, Calculate(in, DefaultRateTable(), DefaultSettings()))
}

// TestCalculate_ChargeableWeightTieBreak verifies the three-way max between
// dead weight, volumetric weight and the configured floor.
func TestCalculate_ChargeableWeightTieBreak(t *testing.T) {
	tests := []struct {
		name     string
		dead     float64
		l, b, h  float64
		expected float64
	}{
		{"floor wins for tiny package", 1, 10, 10, 10, 20},
		{"dead weight wins", 45, 10, 10, 10, 45},
		{"volumetric wins", 10, 100, 90, 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := quoteInput()
			in.Shipment.DeadWeight = tt.dead
			in.Shipment.Length, in.Shipment.Breadth, in.Shipment.Height = tt.l, tt.b, tt.h

			res := Calculate(in, DefaultRateTable(), DefaultSettings())
			require.NotNil(t, res)
			assert.InDelta(t, tt.expected, res.ChargeableWeight, 0.001)
		})
	}
}

// TestCalculate_ChargeableWeightFloorProperty verifies the invariant that
// chargeable weight is never below the floor, dead weight or volumetric
// weight.
func TestCalculate_ChargeableWeightFloorProperty(t *testing.T) {
	s := DefaultSettings()
	for _, dead := range []float64{0, 0.2, 19.99, 20, 21, 500} {
		in := quoteInput()
		in.Shipment.DeadWeight = dead

		res := Calculate(in, DefaultRateTable(), s)
		require.NotNil(t, res)
		assert.GreaterOrEqual(t, res.ChargeableWeight, s.MinChargeableWeight)
		assert.GreaterOrEqual(t, res.ChargeableWeight, res.DeadWeight)
		assert.GreaterOrEqual(t, res.ChargeableWeight, res.VolumetricWeight)
	}
}

// TestCalculate_NonPositiveDimension verifies that any non-positive dimension
// zeroes the volumetric weight instead of producing garbage.
func TestCalculate_NonPositiveDimension(t *testing.T) {
	in := quoteInput()
	in.Shipment.Height = 0

	res := Calculate(in, DefaultRateTable(), DefaultSettings())
	require.NotNil(t, res)
	assert.Zero(t, res.VolumetricWeight)
}

// TestCalculate_InchDimensions verifies the inch-to-cm conversion before the
// volumetric computation.
func TestCalculate_InchDimensions(t *testing.T) {
	in := quoteInput()
	in.Shipment.Unit = UnitInch
	in.Shipment.Length, in.Shipment.Breadth, in.Shipment.Height = 40, 30, 20

	res := Calculate(in, DefaultRateTable(), DefaultSettings())
	require.NotNil(t, res)
	// (40*2.54)*(30*2.54)*(20*2.54)/4500 = 87.40 kg, which beats dead weight.
	assert.InDelta(t, 87.4, res.VolumetricWeight, 0.01)
	assert.InDelta(t, 87.4, res.ChargeableWeight, 0.01)
}

// TestCalculate_FreightMonotonic verifies that freight never decreases when
// chargeable weight grows at a fixed rate.
func TestCalculate_FreightMonotonic(t *testing.T) {
	prev := 0.0
	for _, dead := range []float64{5, 20, 27.9, 28, 50, 120, 400} {
		in := quoteInput()
		in.Shipment.DeadWeight = dead

		res := Calculate(in, DefaultRateTable(), DefaultSettings())
		require.NotNil(t, res)
		assert.GreaterOrEqual(t, res.FreightCharge, prev)
		prev = res.FreightCharge
	}
}

// TestCalculate_MinFreightIsFloorNotDiscount verifies that the clamp never
// reduces an above-minimum freight figure.
func TestCalculate_MinFreightIsFloorNotDiscount(t *testing.T) {
	in := quoteInput()
	in.Shipment.DeadWeight = 100 // 100 * 12.5 = 1250 > 350

	res := Calculate(in, DefaultRateTable(), DefaultSettings())
	require.NotNil(t, res)
	assert.InDelta(t, 1250.0, res.FreightCharge, 0.001)
}

// TestCalculate_MissingRateCell verifies the engine survives a missing rate
// cell with a zero rate and a warning rather than a crash.
func TestCalculate_MissingRateCell(t *testing.T) {
	rates := RateTable{
		ZoneN1: {ZoneN1: 8.0}, // no N1->W2 cell
	}

	res := Calculate(quoteInput(), rates, DefaultSettings())
	require.NotNil(t, res)
	assert.Zero(t, res.BaseRatePerKg)
	assert.InDelta(t, 350.0, res.FreightCharge, 0.001) // clamped to minimum
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "N1->W2")
}

// TestCalculate_ODAWithoutTable verifies that no leg is ever ODA when no
// serviceability table was loaded.
func TestCalculate_ODAWithoutTable(t *testing.T) {
	in := quoteInput()
	in.ServiceabilityLoaded = false
	in.Pickup.Record = nil
	in.Drop.Record = nil

	res := Calculate(in, DefaultRateTable(), DefaultSettings())
	require.NotNil(t, res)
	assert.False(t, res.ODA)
	assert.Zero(t, res.ODACharge)
}

// TestCalculate_ODAMissingRecord verifies that a loaded table without a row
// for a leg marks that leg out-of-delivery-area.
func TestCalculate_ODAMissingRecord(t *testing.T) {
	in := quoteInput()
	in.ServiceabilityLoaded = true
	in.Pickup.Record = &ServicePoint{PickupAvailable: true, DeliveryAvailable: true}
	in.Drop.Record = nil

	res := Calculate(in, DefaultRateTable(), DefaultSettings())
	require.NotNil(t, res)
	assert.False(t, res.PickupODA)
	assert.True(t, res.DropODA)
	assert.True(t, res.ODA)
	// max(800, 5*20) = 800
	assert.InDelta(t, 800.0, res.ODACharge, 0.001)
}

// TestCalculate_ODAUnavailableFlag verifies that a record with the relevant
// availability flag off marks the leg ODA.
func TestCalculate_ODAUnavailableFlag(t *testing.T) {
	in := quoteInput()
	in.ServiceabilityLoaded = true
	in.Pickup.Record = &ServicePoint{PickupAvailable: false, DeliveryAvailable: true}
	in.Drop.Record = &ServicePoint{PickupAvailable: true, DeliveryAvailable: true}

	res := Calculate(in, DefaultRateTable(), DefaultSettings())
	require.NotNil(t, res)
	assert.True(t, res.PickupODA)
	assert.False(t, res.DropODA)
	assert.True(t, res.ODA)
}

// TestCalculate_ODAChargeScalesWithWeight verifies the per-kg ODA pricing
// once it clears the minimum.
func TestCalculate_ODAChargeScalesWithWeight(t *testing.T) {
	in := quoteInput()
	in.ServiceabilityLoaded = true
	in.Shipment.DeadWeight = 300 // 5*300 = 1500 > 800

	res := Calculate(in, DefaultRateTable(), DefaultSettings())
	require.NotNil(t, res)
	assert.InDelta(t, 1500.0, res.ODACharge, 0.001)
}

// TestCalculate_HandlingBands verifies the handling surcharge band edges:
// zero at 70.00, mid band at 71.00 and 200.00, high band at 200.01.
func TestCalculate_HandlingBands(t *testing.T) {
	tests := []struct {
		weight   float64
		expected float64
	}{
		{70.00, 0},
		{71.00, 142.00},   // 2 * 71
		{200.00, 400.00},  // 2 * 200
		{200.01, 600.03},  // 3 * 200.01
	}

	for _, tt := range tests {
		in := quoteInput()
		in.Shipment.DeadWeight = tt.weight

		res := Calculate(in, DefaultRateTable(), DefaultSettings())
		require.NotNil(t, res)
		assert.InDelta(t, tt.expected, res.HandlingCharge, 0.001, "weight %v", tt.weight)
	}
}

// TestCalculate_RegionalSurcharge verifies the hill-state rule, the
// north-east zone rule and the Guwahati carve-out.
func TestCalculate_RegionalSurcharge(t *testing.T) {
	tests := []struct {
		name    string
		drop    Endpoint
		charged bool
	}{
		{
			name:    "Himachal Pradesh destination",
			drop:    Endpoint{Pincode: "171001", City: "Shimla", State: "Himachal Pradesh", Zone: ZoneN2},
			charged: true,
		},
		{
			name:    "Jammu & Kashmir destination",
			drop:    Endpoint{Pincode: "180001", City: "Jammu", State: "Jammu & Kashmir", Zone: ZoneN2},
			charged: true,
		},
		{
			name:    "north-east destination",
			drop:    Endpoint{Pincode: "785001", City: "Jorhat", State: "Assam", Zone: ZoneNorthEast},
			charged: true,
		},
		{
			name:    "Guwahati by city name",
			drop:    Endpoint{Pincode: "785001", City: "Guwahati", State: "Assam", Zone: ZoneNorthEast},
			charged: false,
		},
		{
			name:    "Guwahati by city substring",
			drop:    Endpoint{Pincode: "785001", City: "North Guwahati", State: "Assam", Zone: ZoneNorthEast},
			charged: false,
		},
		{
			name:    "Guwahati by pincode prefix",
			drop:    Endpoint{Pincode: "781001", City: "", State: "Assam", Zone: ZoneNorthEast},
			charged: false,
		},
		{
			name:    "ordinary destination",
			drop:    Endpoint{Pincode: "400001", City: "Mumbai", State: "Maharashtra", Zone: ZoneW2},
			charged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := quoteInput()
			in.Drop = tt.drop

			res := Calculate(in, DefaultRateTable(), DefaultSettings())
			require.NotNil(t, res)
			if tt.charged {
				// 5 per kg on the 20 kg floor
				assert.InDelta(t, 100.0, res.RegionalCharge, 0.001)
			} else {
				assert.Zero(t, res.RegionalCharge)
			}
		})
	}
}

// TestCalculate_OptionSurcharges verifies each service toggle contributes its
// own additive line computed from chargeable weight or declared value.
func TestCalculate_OptionSurcharges(t *testing.T) {
	in := quoteInput()
	in.Shipment.DeclaredValue = 50000
	in.Options = Options{
		COD:             true,
		RiskCover:       true,
		CSDDelivery:     true,
		MallDelivery:    true,
		TimeSpecific:    true,
		HolidayDelivery: true,
		Reattempt:       true,
	}

	res := Calculate(in, DefaultRateTable(), DefaultSettings())
	require.NotNil(t, res)

	assert.InDelta(t, 500.0, res.HolidayCharge, 0.001)
	assert.InDelta(t, 300.0, res.CSDCharge, 0.001)
	assert.InDelta(t, 500.0, res.TimeSpecificCharge, 0.001) // max(500, 5*20)
	assert.InDelta(t, 300.0, res.MallCharge, 0.001)         // max(300, 3*20)
	assert.InDelta(t, 200.0, res.ReattemptCharge, 0.001)    // max(200, 2*20)
	assert.InDelta(t, 1800.0, res.OtherSurcharges, 0.001)
	assert.InDelta(t, 1000.0, res.CODCharge, 0.001) // max(300, 2% of 50000)
	assert.InDelta(t, 550.0, res.ROVCharge, 0.001)  // max(100, 1.1% of 50000)
}

// TestCalculate_OptionMinimums verifies the per-option minimum floors win on
// low declared values and weights.
func TestCalculate_OptionMinimums(t *testing.T) {
	in := quoteInput()
	in.Shipment.DeclaredValue = 100
	in.Options.COD = true
	in.Options.RiskCover = true

	res := Calculate(in, DefaultRateTable(), DefaultSettings())
	require.NotNil(t, res)
	assert.InDelta(t, 300.0, res.CODCharge, 0.001)
	assert.InDelta(t, 100.0, res.ROVCharge, 0.001)
}

// TestCalculate_TotalIsSumOfLines verifies the core invariant: the total
// equals the nine line items summed and rounded once.
func TestCalculate_TotalIsSumOfLines(t *testing.T) {
	in := quoteInput()
	in.ServiceabilityLoaded = true
	in.Shipment.DeadWeight = 123.45
	in.Shipment.DeclaredValue = 7777
	in.Options = Options{COD: true, RiskCover: true, TimeSpecific: true, HolidayDelivery: true}
	in.Drop = Endpoint{Pincode: "171001", City: "Shimla", State: "Himachal Pradesh", Zone: ZoneN2}

	res := Calculate(in, DefaultRateTable(), DefaultSettings())
	require.NotNil(t, res)

	sum := res.FreightCharge + res.FuelSurcharge + res.AWBCharge + res.ODACharge +
		res.HandlingCharge + res.RegionalCharge + res.OtherSurcharges +
		res.CODCharge + res.ROVCharge
	assert.InDelta(t, sum, res.TotalCost, 0.5)
	assert.Equal(t, res.TotalCost, float64(int64(res.TotalCost)), "total must be a whole unit")
}

// TestCalculate_Deterministic verifies that repeated invocations on the same
// inputs produce identical results.
func TestCalculate_Deterministic(t *testing.T) {
	in := quoteInput()
	in.Options.COD = true
	in.Shipment.DeclaredValue = 9999

	first := Calculate(in, DefaultRateTable(), DefaultSettings())
	second := Calculate(in, DefaultRateTable(), DefaultSettings())
	assert.Equal(t, first, second)
}
