package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "Bogotá, Calle 45 #12-30", r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"lat":"4.62","lon":"-74.07"}]`))
	}))
	defer server.Close()

	svc := NewGeocodingServiceWithBaseURL(server.URL)
	loc, err := svc.Geocode(context.Background(), "Bogotá", "Calle 45 #12-30")
	require.NoError(t, err)
	assert.InDelta(t, 4.62, loc.Lat, 0.0001)
	assert.InDelta(t, -74.07, loc.Lng, 0.0001)
}

func TestGeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	svc := NewGeocodingServiceWithBaseURL(server.URL)
	_, err := svc.Geocode(context.Background(), "Bogotá", "Dirección Inexistente 999")
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestGeocodeEmptyInput(t *testing.T) {
	svc := NewGeocodingService()

	_, err := svc.Geocode(context.Background(), "", "Calle 45")
	assert.ErrorIs(t, err, ErrAddressNotFound)

	_, err = svc.Geocode(context.Background(), "Bogotá", "")
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewGeocodingServiceWithBaseURL(server.URL)
	_, err := svc.Geocode(context.Background(), "Bogotá", "Calle 45")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGeocodeMalformedCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"no-es-un-numero","lon":"-74.07"}]`))
	}))
	defer server.Close()

	svc := NewGeocodingServiceWithBaseURL(server.URL)
	_, err := svc.Geocode(context.Background(), "Bogotá", "Calle 45")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid latitude")
}
