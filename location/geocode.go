package location

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

var ErrPlaceNotFound = errors.New("place not found")

// Geocoder resolves a free-text place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (Point, error)
}

// HTTPGeocoder calls the Google Maps Geocoding API. When no API key is
// configured it falls back to a small table of metro-area coordinates,
// which covers the cities the showrooms operate in.
type HTTPGeocoder struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewHTTPGeocoder(apiKey string) *HTTPGeocoder {
	return &HTTPGeocoder{
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/geocode/json",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var _ Geocoder = (*HTTPGeocoder)(nil)

var metroFallback = map[string]Point{
	"mumbai":    {Latitude: 19.0760, Longitude: 72.8777},
	"delhi":     {Latitude: 28.6139, Longitude: 77.2090},
	"new delhi": {Latitude: 28.6139, Longitude: 77.2090},
	"bangalore": {Latitude: 12.9716, Longitude: 77.5946},
	"bengaluru": {Latitude: 12.9716, Longitude: 77.5946},
	"pune":      {Latitude: 18.5204, Longitude: 73.8567},
	"chennai":   {Latitude: 13.0827, Longitude: 80.2707},
	"hyderabad": {Latitude: 17.3850, Longitude: 78.4867},
	"kolkata":   {Latitude: 22.5726, Longitude: 88.3639},
}

func (g *HTTPGeocoder) Geocode(ctx context.Context, place string) (Point, error) {
	if g.apiKey == "" {
		return fallbackLookup(place)
	}

	params := url.Values{}
	params.Set("address", place)
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Point{}, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Point{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		return fallbackLookup(place)
	}

	loc := body.Results[0].Geometry.Location
	return Point{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

func fallbackLookup(place string) (Point, error) {
	needle := strings.ToLower(strings.TrimSpace(place))
	if p, ok := metroFallback[needle]; ok {
		return p, nil
	}
	for city, p := range metroFallback {
		if strings.Contains(needle, city) {
			return p, nil
		}
	}
	return Point{}, ErrPlaceNotFound
}
