package elevation

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/velomapa/gpxscale/internal/contract"
)

// Geolocation service endpoints. Overridable for tests.
const (
	defaultIPAPICoURL = "https://ipapi.co/json/"
	defaultIPAPIURL   = "http://ip-api.com/json/"
)

// IPLocator resolves the device's coordinate from its public IP address.
// It tries ipapi.co first and falls back to ip-api.com.
type IPLocator struct {
	PrimaryURL  string
	FallbackURL string
	Client      *http.Client
}

var _ contract.Locator = &IPLocator{} // Compile-time check

// NewIPLocator returns a locator against the public geolocation endpoints.
func NewIPLocator() *IPLocator {
	return &IPLocator{
		PrimaryURL:  defaultIPAPICoURL,
		FallbackURL: defaultIPAPIURL,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Locate implements the Locator interface.
func (l *IPLocator) Locate(ctx context.Context) (float64, float64, error) {
	lat, lon, err := l.locatePrimary(ctx)
	if err == nil {
		return lat, lon, nil
	}
	lat, lon, fbErr := l.locateFallback(ctx)
	if fbErr == nil {
		return lat, lon, nil
	}
	return 0, 0, fmt.Errorf("geolocation failed: %w (fallback: %v)", err, fbErr)
}

// locatePrimary queries ipapi.co, which reports latitude/longitude fields.
func (l *IPLocator) locatePrimary(ctx context.Context) (float64, float64, error) {
	var payload struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := getJSON(ctx, l.Client, l.PrimaryURL, &payload); err != nil {
		return 0, 0, err
	}
	if payload.Latitude == 0 && payload.Longitude == 0 {
		return 0, 0, fmt.Errorf("empty geolocation response")
	}
	return payload.Latitude, payload.Longitude, nil
}

// locateFallback queries ip-api.com, which reports lat/lon plus a status field.
func (l *IPLocator) locateFallback(ctx context.Context) (float64, float64, error) {
	var payload struct {
		Status string  `json:"status"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
	}
	if err := getJSON(ctx, l.Client, l.FallbackURL, &payload); err != nil {
		return 0, 0, err
	}
	if payload.Status != "success" {
		return 0, 0, fmt.Errorf("geolocation status: %s", payload.Status)
	}
	return payload.Lat, payload.Lon, nil
}
