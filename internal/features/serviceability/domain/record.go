package domain

import (
	"errors"
	"strings"
)

// ErrMissingPincodeColumn is returned when an uploaded table lacks the
// mandatory pincode column. This fails the whole ingestion; individual bad
// rows are merely skipped.
var ErrMissingPincodeColumn = errors.New("serviceability table has no pincode column")

// Record is the serviceability entry for one pincode. Its zone, when
// non-empty, overrides the state-derived tariff zone, and its availability
// flags drive out-of-delivery-area status per leg.
type Record struct {
	Pincode           string `json:"pincode"`
	PickupAvailable   bool   `json:"pickup_available"`
	DeliveryAvailable bool   `json:"delivery_available"`
	Zone              string `json:"zone,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
}

// ParseResult summarizes one table ingestion.
type ParseResult struct {
	// Records maps pincode to its parsed record.
	Records map[string]Record `json:"-"`
	// Accepted is the number of rows kept.
	Accepted int `json:"accepted"`
	// Skipped is the number of rows dropped for a bad or missing pincode.
	Skipped int `json:"skipped"`
}

// IsAffirmative reports whether a table cell means "available".
func IsAffirmative(v string) bool {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "Y", "YES", "TRUE":
		return true
	}
	return false
}
