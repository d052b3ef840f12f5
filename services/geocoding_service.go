package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Gothsec/centro-digital/models"
)

const nominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// ErrAddressNotFound is returned when the geocoder has no match for an
// address. Callers treat geocoding as best-effort: registration proceeds
// without coordinates.
var ErrAddressNotFound = errors.New("address not found")

// GeocodingService resolves an address to coordinates using the public
// Nominatim API.
type GeocodingService struct {
	baseURL string
	client  *http.Client
}

func NewGeocodingService() *GeocodingService {
	return &GeocodingService{
		baseURL: nominatimBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewGeocodingServiceWithBaseURL is used by tests to point at a fake server
func NewGeocodingServiceWithBaseURL(baseURL string) *GeocodingService {
	s := NewGeocodingService()
	s.baseURL = baseURL
	return s
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves "city, address" to a coordinate pair. The address is sent
// as a literal query value, never interpolated into the URL by hand.
func (s *GeocodingService) Geocode(ctx context.Context, city, address string) (*models.Location, error) {
	if city == "" || address == "" {
		return nil, ErrAddressNotFound
	}

	query := url.Values{}
	query.Set("format", "json")
	query.Set("q", city+", "+address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	// Nominatim usage policy requires an identifying agent
	req.Header.Set("User-Agent", "centro-digital/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request failed: status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocoding response: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocoding response: %w", err)
	}

	return &models.Location{Lat: lat, Lng: lng}, nil
}
