package domain

// Location is the city/state pair a postal pincode resolves to. It is used
// only to pre-fill quote forms; the rating engine never consults it.
type Location struct {
	Pincode string `json:"pincode"`
	City    string `json:"city"`
	State   string `json:"state"`
}
