package domain

// Settings is the tunable tariff configuration consumed by Calculate.
// It is passed by value and never mutated by the engine; a quote request
// may supply its own copy to override the defaults for one calculation.
type Settings struct {
	// VolumetricDivisor converts cm³ volume into kilograms.
	VolumetricDivisor float64 `json:"volumetric_divisor"`
	// MinChargeableWeight is the billing floor in kg.
	MinChargeableWeight float64 `json:"min_chargeable_weight"`
	// MinFreight is the minimum base freight amount.
	MinFreight float64 `json:"min_freight"`
	// FuelSurchargePct is the fuel surcharge as a percentage of base freight.
	FuelSurchargePct float64 `json:"fuel_surcharge_pct"`
	// AWBFee is the flat airway bill fee applied to every shipment.
	AWBFee float64 `json:"awb_fee"`

	// ODAPerKg is the out-of-delivery-area rate per kg.
	ODAPerKg float64 `json:"oda_per_kg"`
	// ODAMin is the minimum out-of-delivery-area charge.
	ODAMin float64 `json:"oda_min"`

	// HandlingPerKgMid applies to chargeable weights in the 71–200 kg band.
	HandlingPerKgMid float64 `json:"handling_per_kg_mid"`
	// HandlingPerKgHigh applies to chargeable weights above 200 kg.
	HandlingPerKgHigh float64 `json:"handling_per_kg_high"`

	// RegionalPerKg is the per-kg surcharge for regional destinations.
	RegionalPerKg float64 `json:"regional_per_kg"`

	// HolidayFee is the flat fee for holiday/Sunday delivery.
	HolidayFee float64 `json:"holiday_fee"`
	// CSDFee is the flat fee for CSD delivery.
	CSDFee float64 `json:"csd_fee"`

	// TimeSpecificPerKg and TimeSpecificMin price time-specific delivery.
	TimeSpecificPerKg float64 `json:"time_specific_per_kg"`
	TimeSpecificMin   float64 `json:"time_specific_min"`

	// MallPerKg and MallMin price mall delivery.
	MallPerKg float64 `json:"mall_per_kg"`
	MallMin   float64 `json:"mall_min"`

	// ReattemptPerKg and ReattemptMin price delivery re-attempts.
	ReattemptPerKg float64 `json:"reattempt_per_kg"`
	ReattemptMin   float64 `json:"reattempt_min"`

	// CODPct and CODMin price cash-on-delivery as a share of declared value.
	CODPct float64 `json:"cod_pct"`
	CODMin float64 `json:"cod_min"`

	// ROVPct and ROVMin price risk-cover as a share of declared value.
	ROVPct float64 `json:"rov_pct"`
	ROVMin float64 `json:"rov_min"`
}

// DefaultSettings returns the standard tariff configuration.
func DefaultSettings() Settings {
	return Settings{
		VolumetricDivisor:   4500,
		MinChargeableWeight: 20,
		MinFreight:          350,
		FuelSurchargePct:    25,
		AWBFee:              100,
		ODAPerKg:            5,
		ODAMin:              800,
		HandlingPerKgMid:    2,
		HandlingPerKgHigh:   3,
		RegionalPerKg:       5,
		HolidayFee:          500,
		CSDFee:              300,
		TimeSpecificPerKg:   5,
		TimeSpecificMin:     500,
		MallPerKg:           3,
		MallMin:             300,
		ReattemptPerKg:      2,
		ReattemptMin:        200,
		CODPct:              2,
		CODMin:              300,
		ROVPct:              1.1,
		ROVMin:              100,
	}
}
