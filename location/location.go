// Package location computes distances between customers and showrooms
// and resolves free-text place names to coordinates.
package location

import (
	"fmt"
	"math"
	"net/url"
	"sync"

	"github.com/everylingua/dealership-backend/catalog"
)

const earthRadiusKM = 6371

// Point is a WGS84 coordinate.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Distance returns the great-circle distance between two points in
// kilometres, using the Haversine formula.
func Distance(a, b Point) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Nearest picks the closest dealership to the given point. The second
// return is the distance in kilometres; ok is false for an empty list.
func Nearest(dealers []catalog.Dealership, p Point) (catalog.Dealership, float64, bool) {
	if len(dealers) == 0 {
		return catalog.Dealership{}, 0, false
	}

	best := dealers[0]
	bestDist := Distance(p, Point{Latitude: best.Latitude, Longitude: best.Longitude})
	for _, d := range dealers[1:] {
		dist := Distance(p, Point{Latitude: d.Latitude, Longitude: d.Longitude})
		if dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, bestDist, true
}

// FormatDistance renders a distance the way the front end displays it:
// metres below one kilometre, otherwise kilometres with one decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0f m", km*1000)
	}
	return fmt.Sprintf("%.1f km", km)
}

// DirectionsURL builds a Google Maps driving-directions link from the
// customer's position to a dealership.
func DirectionsURL(from Point, d catalog.Dealership) string {
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&origin=%f,%f&destination=%f,%f&travelmode=driving",
		from.Latitude, from.Longitude, d.Latitude, d.Longitude)
}

// SearchURL builds a Google Maps search link for a dealership address.
func SearchURL(d catalog.Dealership) string {
	q := url.QueryEscape(d.Name + ", " + d.Address)
	return "https://www.google.com/maps/search/?api=1&query=" + q
}

// Holder keeps the most recently reported customer position. The web
// front end sets it once per session and the locator endpoints read it
// back when a request carries no explicit coordinates.
type Holder struct {
	mu    sync.Mutex
	point Point
	set   bool
}

func (h *Holder) Set(p Point) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.point = p
	h.set = true
}

func (h *Holder) Get() (Point, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.point, h.set
}
