package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"proculator/internal/core/httpclient"
	"proculator/internal/features/pincode/domain"
)

// PostalAPIAdapter implements ports.LookupProvider against the public India
// Post pincode API.
type PostalAPIAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the API root, e.g. https://api.postalpincode.in
	baseURL string
}

// NewPostalAPIAdapter creates a new PostalAPIAdapter.
func NewPostalAPIAdapter(baseURL string, timeout time.Duration) *PostalAPIAdapter {
	return &PostalAPIAdapter{
		client:  httpclient.NewClient(timeout),
		baseURL: baseURL,
	}
}

// postalResponse represents the JSON structure from the pincode API.
type postalResponse struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		Name     string `json:"Name"`
		District string `json:"District"`
		State    string `json:"State"`
	} `json:"PostOffice"`
}

// Lookup fetches the city/state pair for a pincode. An unknown pincode
// yields nil without an error; upstream failures are surfaced.
func (a *PostalAPIAdapter) Lookup(ctx context.Context, pincode string) (*domain.Location, error) {
	url := fmt.Sprintf("%s/pincode/%s", a.baseURL, pincode)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pincode API returned status: %d", resp.StatusCode)
	}

	var results []postalResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 || results[0].Status != "Success" || len(results[0].PostOffice) == 0 {
		return nil, nil
	}

	office := results[0].PostOffice[0]
	return &domain.Location{
		Pincode: pincode,
		City:    office.District,
		State:   office.State,
	}, nil
}
