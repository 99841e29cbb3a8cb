package domain

import "strings"

// TariffZone identifies a pricing region used for rate table lookups.
// The empty value means the zone could not be resolved.
type TariffZone string

const (
	// ZoneNone indicates an unresolved zone.
	ZoneNone TariffZone = ""
	// ZoneN1 covers the Delhi NCR core.
	ZoneN1 TariffZone = "N1"
	// ZoneN2 covers the rest of north India.
	ZoneN2 TariffZone = "N2"
	// ZoneC1 covers central India.
	ZoneC1 TariffZone = "C1"
	// ZoneW1 covers Gujarat and Goa.
	ZoneW1 TariffZone = "W1"
	// ZoneW2 covers Maharashtra.
	ZoneW2 TariffZone = "W2"
	// ZoneS1 covers Karnataka, Tamil Nadu and Telangana.
	ZoneS1 TariffZone = "S1"
	// ZoneS2 covers the remaining southern states.
	ZoneS2 TariffZone = "S2"
	// ZoneE1 covers east India.
	ZoneE1 TariffZone = "E1"
	// ZoneNorthEast covers the north-eastern states and Sikkim.
	ZoneNorthEast TariffZone = "NE"
)

// ZoneMap maps normalized state names to tariff zones.
// Keys must already be lowercase and trimmed; Resolve normalizes its input.
type ZoneMap map[string]TariffZone

// Resolve returns the tariff zone for a state name, or ZoneNone when the
// state is not mapped. Matching is case-insensitive and ignores surrounding
// whitespace. An unmapped state is not an error: the caller must treat
// ZoneNone as "insufficient data" and refuse to quote.
func (m ZoneMap) Resolve(state string) TariffZone {
	return m[normalizeState(state)]
}

// Zones returns the distinct zones appearing in the map's range.
func (m ZoneMap) Zones() []TariffZone {
	seen := make(map[TariffZone]bool)
	var zones []TariffZone
	for _, z := range m {
		if !seen[z] {
			seen[z] = true
			zones = append(zones, z)
		}
	}
	return zones
}

// RateTable holds the per-kilogram rate for every origin/destination zone pair.
type RateTable map[TariffZone]map[TariffZone]float64

// Rate returns the per-kg rate for the given zone pair. A missing cell
// yields 0 with ok=false; the engine records a warning instead of failing.
func (t RateTable) Rate(from, to TariffZone) (float64, bool) {
	row, ok := t[from]
	if !ok {
		return 0, false
	}
	rate, ok := row[to]
	return rate, ok
}

// Validate reports every zone pair from the map's range that has no rate
// cell. A non-empty result is a data-quality defect in the tariff data.
func (t RateTable) Validate(zm ZoneMap) []string {
	zones := zm.Zones()
	var missing []string
	for _, from := range zones {
		for _, to := range zones {
			if _, ok := t.Rate(from, to); !ok {
				missing = append(missing, string(from)+"->"+string(to))
			}
		}
	}
	return missing
}

// ResolveEndpointZone resolves the zone for one shipment leg. A non-empty
// zone on the serviceability record overrides the state-derived zone.
func ResolveEndpointZone(zm ZoneMap, state string, sp *ServicePoint) TariffZone {
	if sp != nil && sp.Zone != ZoneNone {
		return sp.Zone
	}
	return zm.Resolve(state)
}

// normalizeState lowercases and trims a state name for map lookup.
func normalizeState(state string) string {
	return strings.ToLower(strings.TrimSpace(state))
}
