package domain

import (
	"fmt"
	"math"
	"strings"
)

// ServicePoint is the serviceability view of one pincode: whether the
// carrier picks up and delivers there, plus an optional zone override.
type ServicePoint struct {
	PickupAvailable   bool
	DeliveryAvailable bool
	Zone              TariffZone
	City              string
	State             string
}

// Endpoint is one resolved leg of a shipment.
type Endpoint struct {
	Pincode string
	City    string
	State   string
	// Zone is the resolved tariff zone, override already applied.
	Zone TariffZone
	// Record is the serviceability record for the pincode, nil when the
	// loaded table has no row for it.
	Record *ServicePoint
}

// QuoteInput is the complete input of one calculation.
type QuoteInput struct {
	Pickup   Endpoint
	Drop     Endpoint
	Shipment Shipment
	Options  Options
	// ServiceabilityLoaded reports whether a serviceability table exists at
	// all. Without one, no leg is ever out-of-delivery-area: absence of data
	// is distinct from absence of availability within loaded data.
	ServiceabilityLoaded bool
}

// CalculationResult is the itemized outcome of one calculation. Every
// currency line is rounded to two decimals; TotalCost is the sum of the
// rounded lines, rounded once to the nearest whole unit.
type CalculationResult struct {
	PickupZone TariffZone `json:"pickup_zone"`
	DropZone   TariffZone `json:"drop_zone"`

	DeadWeight       float64 `json:"dead_weight"`
	VolumetricWeight float64 `json:"volumetric_weight"`
	ChargeableWeight float64 `json:"chargeable_weight"`

	BaseRatePerKg float64 `json:"base_rate_per_kg"`

	FreightCharge  float64 `json:"freight_charge"`
	FuelSurcharge  float64 `json:"fuel_surcharge"`
	AWBCharge      float64 `json:"awb_charge"`
	ODACharge      float64 `json:"oda_charge"`
	HandlingCharge float64 `json:"handling_charge"`
	RegionalCharge float64 `json:"regional_charge"`

	HolidayCharge      float64 `json:"holiday_charge"`
	CSDCharge          float64 `json:"csd_charge"`
	TimeSpecificCharge float64 `json:"time_specific_charge"`
	MallCharge         float64 `json:"mall_charge"`
	ReattemptCharge    float64 `json:"reattempt_charge"`
	// OtherSurcharges is the sum of the five optional service lines above.
	OtherSurcharges float64 `json:"other_surcharges"`

	CODCharge float64 `json:"cod_charge"`
	ROVCharge float64 `json:"rov_charge"`

	PickupODA bool `json:"pickup_oda"`
	DropODA   bool `json:"drop_oda"`
	ODA       bool `json:"oda"`

	TotalCost float64 `json:"total_cost"`

	Warnings []string `json:"warnings,omitempty"`
}

// regionalStates get the regional surcharge by destination state name,
// irrespective of the resolved zone.
var regionalStates = map[string]bool{
	"jammu & kashmir":   true,
	"jammu and kashmir": true,
	"himachal pradesh":  true,
}

// guwahatiPinPrefix is the postal prefix of Guwahati, the carve-out city
// exempt from the north-east regional surcharge.
const guwahatiPinPrefix = "781"

// Calculate derives the full cost breakdown for one shipment. It is a pure
// function: it reads its inputs, produces a fresh result, and keeps no state
// between calls. It returns nil when either endpoint's zone is unresolved;
// every other input degrades to a safe default instead of failing.
func Calculate(in QuoteInput, rates RateTable, s Settings) *CalculationResult {
	if in.Pickup.Zone == ZoneNone || in.Drop.Zone == ZoneNone {
		return nil
	}

	res := &CalculationResult{
		PickupZone: in.Pickup.Zone,
		DropZone:   in.Drop.Zone,
	}

	// ODA status per leg. Only meaningful when a table is loaded.
	if in.ServiceabilityLoaded {
		res.PickupODA = in.Pickup.Record == nil || !in.Pickup.Record.PickupAvailable
		res.DropODA = in.Drop.Record == nil || !in.Drop.Record.DeliveryAvailable
	}
	res.ODA = res.PickupODA || res.DropODA

	// Chargeable weight: the greater of dead weight, volumetric weight and
	// the configured floor. The three-way max is the billing tie-break; the
	// carrier never charges below its floor.
	l, b, h := in.Shipment.dimensionsInCm()
	volumetric := 0.0
	if l > 0 && b > 0 && h > 0 && s.VolumetricDivisor > 0 {
		volumetric = l * b * h / s.VolumetricDivisor
	}
	res.DeadWeight = round2(in.Shipment.DeadWeight)
	res.VolumetricWeight = round2(volumetric)
	weight := round2(math.Max(in.Shipment.DeadWeight, math.Max(volumetric, s.MinChargeableWeight)))
	res.ChargeableWeight = weight

	// Base freight, clamped up to the configured minimum. The clamp is a
	// floor: it never reduces a naturally higher freight figure.
	rate, ok := rates.Rate(in.Pickup.Zone, in.Drop.Zone)
	if !ok {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("no rate configured for zone pair %s->%s", in.Pickup.Zone, in.Drop.Zone))
	}
	res.BaseRatePerKg = rate
	freight := rate * weight
	if freight < s.MinFreight {
		freight = s.MinFreight
	}
	res.FreightCharge = round2(freight)

	// Fuel surcharge is proportional to freight, never to weight.
	res.FuelSurcharge = round2(freight * s.FuelSurchargePct / 100)

	res.AWBCharge = round2(s.AWBFee)

	if res.ODA {
		res.ODACharge = round2(math.Max(s.ODAMin, s.ODAPerKg*weight))
	}

	// Handling bands are keyed on chargeable weight and never blend.
	switch {
	case weight <= 70:
		res.HandlingCharge = 0
	case weight <= 200:
		res.HandlingCharge = round2(s.HandlingPerKgMid * weight)
	default:
		res.HandlingCharge = round2(s.HandlingPerKgHigh * weight)
	}

	if regionalSurchargeApplies(in.Drop) {
		res.RegionalCharge = round2(s.RegionalPerKg * weight)
	}

	if in.Options.HolidayDelivery {
		res.HolidayCharge = round2(s.HolidayFee)
	}
	if in.Options.CSDDelivery {
		res.CSDCharge = round2(s.CSDFee)
	}
	if in.Options.TimeSpecific {
		res.TimeSpecificCharge = round2(math.Max(s.TimeSpecificMin, s.TimeSpecificPerKg*weight))
	}
	if in.Options.MallDelivery {
		res.MallCharge = round2(math.Max(s.MallMin, s.MallPerKg*weight))
	}
	if in.Options.Reattempt {
		res.ReattemptCharge = round2(math.Max(s.ReattemptMin, s.ReattemptPerKg*weight))
	}
	res.OtherSurcharges = round2(res.HolidayCharge + res.CSDCharge +
		res.TimeSpecificCharge + res.MallCharge + res.ReattemptCharge)

	if in.Options.COD {
		res.CODCharge = round2(math.Max(s.CODMin, in.Shipment.DeclaredValue*s.CODPct/100))
	}
	if in.Options.RiskCover {
		res.ROVCharge = round2(math.Max(s.ROVMin, in.Shipment.DeclaredValue*s.ROVPct/100))
	}

	// Each line is rounded independently above; the headline total sums the
	// rounded lines and rounds exactly once to the nearest whole unit.
	res.TotalCost = math.Round(res.FreightCharge + res.FuelSurcharge + res.AWBCharge +
		res.ODACharge + res.HandlingCharge + res.RegionalCharge +
		res.OtherSurcharges + res.CODCharge + res.ROVCharge)

	return res
}

// regionalSurchargeApplies implements the destination-based regional rule:
// the named hill states always qualify; a north-east zone destination
// qualifies unless it is Guwahati, identified by city substring or the 781
// pincode prefix.
func regionalSurchargeApplies(drop Endpoint) bool {
	if regionalStates[normalizeState(drop.State)] {
		return true
	}
	if drop.Zone != ZoneNorthEast {
		return false
	}
	if strings.Contains(strings.ToLower(drop.City), "guwahati") {
		return false
	}
	if strings.HasPrefix(strings.TrimSpace(drop.Pincode), guwahatiPinPrefix) {
		return false
	}
	return true
}

// round2 rounds to two decimal places for currency display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
