// Package elevation resolves real-world elevations and coordinates from
// public lookup services, with durable caching and proximity reuse.
package elevation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/velomapa/gpxscale/internal/contract"
)

// Lookup service endpoints. Overridable for tests.
const (
	defaultOpenElevationURL = "https://api.open-elevation.com/api/v1/lookup"
	defaultElevationAPIURL  = "https://elevation-api.io/api/elevation"
)

// defaultHTTPTimeout bounds each lookup request.
const defaultHTTPTimeout = 10 * time.Second

// OpenElevationClient queries the Open-Elevation public API.
type OpenElevationClient struct {
	BaseURL string
	Client  *http.Client
}

var _ contract.ElevationProvider = &OpenElevationClient{} // Compile-time check

// NewOpenElevationClient returns a client against the public Open-Elevation endpoint.
func NewOpenElevationClient() *OpenElevationClient {
	return &OpenElevationClient{
		BaseURL: defaultOpenElevationURL,
		Client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// Elevation implements the ElevationProvider interface.
func (c *OpenElevationClient) Elevation(ctx context.Context, lat, lon float64) (*float64, error) {
	query := url.Values{}
	query.Set("locations", fmt.Sprintf("%f,%f", lat, lon))

	var payload struct {
		Results []struct {
			Elevation float64 `json:"elevation"`
		} `json:"results"`
	}
	if err := getJSON(ctx, c.Client, c.BaseURL+"?"+query.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("open-elevation lookup failed: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}
	elevation := payload.Results[0].Elevation
	return &elevation, nil
}

// ElevationAPIClient queries the elevation-api.io service.
type ElevationAPIClient struct {
	BaseURL string
	Client  *http.Client
}

var _ contract.ElevationProvider = &ElevationAPIClient{} // Compile-time check

// NewElevationAPIClient returns a client against the public elevation-api.io endpoint.
func NewElevationAPIClient() *ElevationAPIClient {
	return &ElevationAPIClient{
		BaseURL: defaultElevationAPIURL,
		Client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// Elevation implements the ElevationProvider interface.
func (c *ElevationAPIClient) Elevation(ctx context.Context, lat, lon float64) (*float64, error) {
	query := url.Values{}
	query.Set("points", fmt.Sprintf("(%f,%f)", lat, lon))

	var payload struct {
		Elevations []struct {
			Elevation float64 `json:"elevation"`
		} `json:"elevations"`
	}
	if err := getJSON(ctx, c.Client, c.BaseURL+"?"+query.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("elevation-api lookup failed: %w", err)
	}
	if len(payload.Elevations) == 0 {
		return nil, nil
	}
	elevation := payload.Elevations[0].Elevation
	return &elevation, nil
}

// ChainProvider tries each provider in order until one returns a result.
// A provider error moves on to the next; only the last error surfaces.
type ChainProvider struct {
	Providers []contract.ElevationProvider
}

var _ contract.ElevationProvider = &ChainProvider{} // Compile-time check

// NewDefaultChain returns the production provider chain: Open-Elevation
// first, elevation-api.io as fallback.
func NewDefaultChain() *ChainProvider {
	return &ChainProvider{
		Providers: []contract.ElevationProvider{
			NewOpenElevationClient(),
			NewElevationAPIClient(),
		},
	}
}

// Elevation implements the ElevationProvider interface.
func (c *ChainProvider) Elevation(ctx context.Context, lat, lon float64) (*float64, error) {
	var lastErr error
	for _, p := range c.Providers {
		elevation, err := p.Elevation(ctx, lat, lon)
		if err != nil {
			lastErr = err
			continue
		}
		if elevation != nil {
			return elevation, nil
		}
	}
	return nil, lastErr
}

// getJSON performs a GET request and decodes the JSON body into out.
func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
