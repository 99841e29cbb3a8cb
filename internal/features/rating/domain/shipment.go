package domain

import (
	"strconv"
	"strings"
)

// Dimension units accepted on a shipment. Anything else is treated as cm.
const (
	UnitCentimeter = "cm"
	UnitInch       = "in"
)

const inchToCm = 2.54

// Shipment holds the normalized physical attributes of one consignment.
type Shipment struct {
	// DeadWeight is the declared weight in kg.
	DeadWeight float64 `json:"dead_weight"`
	// Length, Breadth and Height are the package dimensions.
	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
	Height  float64 `json:"height"`
	// Unit is the dimension unit, UnitCentimeter or UnitInch.
	Unit string `json:"unit"`
	// DeclaredValue is the consignment value for COD/ROV pricing.
	DeclaredValue float64 `json:"declared_value"`
}

// ShipmentForm carries the raw string fields of a live-editing form.
type ShipmentForm struct {
	Weight        string `json:"weight"`
	Length        string `json:"length"`
	Breadth       string `json:"breadth"`
	Height        string `json:"height"`
	Unit          string `json:"unit"`
	DeclaredValue string `json:"declared_value"`
}

// ParseShipment converts form fields into a Shipment. Empty or non-numeric
// fields become 0 rather than errors so a partially filled form still quotes.
func ParseShipment(f ShipmentForm) Shipment {
	return Shipment{
		DeadWeight:    toNumber(f.Weight),
		Length:        toNumber(f.Length),
		Breadth:       toNumber(f.Breadth),
		Height:        toNumber(f.Height),
		Unit:          strings.ToLower(strings.TrimSpace(f.Unit)),
		DeclaredValue: toNumber(f.DeclaredValue),
	}
}

// dimensionsInCm returns the three dimensions converted to centimeters.
func (s Shipment) dimensionsInCm() (l, b, h float64) {
	factor := 1.0
	if s.Unit == UnitInch {
		factor = inchToCm
	}
	return s.Length * factor, s.Breadth * factor, s.Height * factor
}

// toNumber parses a form field, degrading silently to 0 on bad input.
func toNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Options are the independent service toggles on a quote. Any subset may be
// active at once; each contributes its own surcharge line.
type Options struct {
	COD             bool `json:"cod"`
	RiskCover       bool `json:"risk_cover"`
	CSDDelivery     bool `json:"csd_delivery"`
	MallDelivery    bool `json:"mall_delivery"`
	TimeSpecific    bool `json:"time_specific"`
	HolidayDelivery bool `json:"holiday_delivery"`
	Reattempt       bool `json:"reattempt"`
}
