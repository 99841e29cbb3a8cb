package domain

// DefaultZoneMap returns the built-in state-to-zone mapping.
// Callers must treat the returned map as read-only.
func DefaultZoneMap() ZoneMap {
	return ZoneMap{
		"delhi":             ZoneN1,
		"haryana":           ZoneN1,
		"punjab":            ZoneN2,
		"chandigarh":        ZoneN2,
		"himachal pradesh":  ZoneN2,
		"jammu & kashmir":   ZoneN2,
		"jammu and kashmir": ZoneN2,
		"ladakh":            ZoneN2,
		"uttarakhand":       ZoneN2,
		"uttar pradesh":     ZoneN2,
		"rajasthan":         ZoneN2,
		"madhya pradesh":    ZoneC1,
		"chhattisgarh":      ZoneC1,
		"gujarat":           ZoneW1,
		"goa":               ZoneW1,
		"dadra and nagar haveli and daman and diu": ZoneW1,
		"maharashtra":       ZoneW2,
		"karnataka":         ZoneS1,
		"tamil nadu":        ZoneS1,
		"telangana":         ZoneS1,
		"andhra pradesh":    ZoneS2,
		"kerala":            ZoneS2,
		"puducherry":        ZoneS2,
		"west bengal":       ZoneE1,
		"bihar":             ZoneE1,
		"jharkhand":         ZoneE1,
		"odisha":            ZoneE1,
		"assam":             ZoneNorthEast,
		"meghalaya":         ZoneNorthEast,
		"tripura":           ZoneNorthEast,
		"mizoram":           ZoneNorthEast,
		"manipur":           ZoneNorthEast,
		"nagaland":          ZoneNorthEast,
		"arunachal pradesh": ZoneNorthEast,
		"sikkim":            ZoneNorthEast,
	}
}

// DefaultRateTable returns the built-in per-kg zone-to-zone rate card.
// Callers must treat the returned table as read-only.
func DefaultRateTable() RateTable {
	return RateTable{
		ZoneN1: {ZoneN1: 8.0, ZoneN2: 9.5, ZoneC1: 10.5, ZoneW1: 11.5, ZoneW2: 12.5, ZoneS1: 14.0, ZoneS2: 15.0, ZoneE1: 13.0, ZoneNorthEast: 17.5},
		ZoneN2: {ZoneN1: 9.5, ZoneN2: 8.5, ZoneC1: 10.0, ZoneW1: 12.0, ZoneW2: 13.0, ZoneS1: 14.5, ZoneS2: 15.5, ZoneE1: 13.5, ZoneNorthEast: 18.0},
		ZoneC1: {ZoneN1: 10.5, ZoneN2: 10.0, ZoneC1: 7.5, ZoneW1: 10.0, ZoneW2: 10.5, ZoneS1: 12.0, ZoneS2: 13.0, ZoneE1: 11.5, ZoneNorthEast: 16.0},
		ZoneW1: {ZoneN1: 11.5, ZoneN2: 12.0, ZoneC1: 10.0, ZoneW1: 7.5, ZoneW2: 8.5, ZoneS1: 11.0, ZoneS2: 12.0, ZoneE1: 14.0, ZoneNorthEast: 18.5},
		ZoneW2: {ZoneN1: 12.5, ZoneN2: 13.0, ZoneC1: 10.5, ZoneW1: 8.5, ZoneW2: 7.5, ZoneS1: 10.0, ZoneS2: 11.0, ZoneE1: 14.5, ZoneNorthEast: 19.0},
		ZoneS1: {ZoneN1: 14.0, ZoneN2: 14.5, ZoneC1: 12.0, ZoneW1: 11.0, ZoneW2: 10.0, ZoneS1: 7.5, ZoneS2: 8.5, ZoneE1: 15.0, ZoneNorthEast: 19.5},
		ZoneS2: {ZoneN1: 15.0, ZoneN2: 15.5, ZoneC1: 13.0, ZoneW1: 12.0, ZoneW2: 11.0, ZoneS1: 8.5, ZoneS2: 7.5, ZoneE1: 15.5, ZoneNorthEast: 20.0},
		ZoneE1: {ZoneN1: 13.0, ZoneN2: 13.5, ZoneC1: 11.5, ZoneW1: 14.0, ZoneW2: 14.5, ZoneS1: 15.0, ZoneS2: 15.5, ZoneE1: 7.5, ZoneNorthEast: 12.0},
		ZoneNorthEast: {ZoneN1: 17.5, ZoneN2: 18.0, ZoneC1: 16.0, ZoneW1: 18.5, ZoneW2: 19.0, ZoneS1: 19.5, ZoneS2: 20.0, ZoneE1: 12.0, ZoneNorthEast: 10.0},
	}
}
