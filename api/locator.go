package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/everylingua/dealership-backend/catalog"
	"github.com/everylingua/dealership-backend/internal/middleware"
	"github.com/everylingua/dealership-backend/location"
)

type setLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Place     string   `json:"place"`
}

// setLocationHandler records the customer's position, either from
// device coordinates or by geocoding a place name.
func (a *API) setLocationHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req setLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var p location.Point
	switch {
	case req.Latitude != nil && req.Longitude != nil:
		p = location.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
	case req.Place != "":
		var err error
		p, err = a.geocoder.Geocode(c.Request.Context(), req.Place)
		if err != nil {
			if errors.Is(err, location.ErrPlaceNotFound) {
				fail(c, http.StatusNotFound, "could not find that place")
				return
			}
			logger.ErrorContext(c, "geocoding failed", "error", err, "place", req.Place)
			fail(c, http.StatusBadGateway, "location lookup is temporarily unavailable")
			return
		}
	default:
		fail(c, http.StatusBadRequest, "provide latitude and longitude, or a place name")
		return
	}

	a.position.Set(p)
	respond(c, http.StatusOK, gin.H{"location": p})
}

type nearestDealerRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (a *API) nearestDealerHandler(c *gin.Context) {
	var req nearestDealerRequest
	// Coordinates are optional; without them the stored position is used.
	if c.Request.Body != nil {
		_ = c.ShouldBindJSON(&req)
	}

	p, ok := a.resolvePoint(req.Latitude, req.Longitude)
	if !ok {
		fail(c, http.StatusNotFound, "no location known; set one via /api/location/set")
		return
	}

	dealer, km, ok := location.Nearest(a.catalog.Dealerships(), p)
	if !ok {
		fail(c, http.StatusNotFound, "no dealerships configured")
		return
	}

	respond(c, http.StatusOK, gin.H{
		"dealership":     dealer,
		"distance_km":    km,
		"distance_miles": km * 0.621371,
		"distance":       location.FormatDistance(km),
		"directions_url": location.DirectionsURL(p, dealer),
	})
}

type nearbyDealership struct {
	catalog.Dealership
	DistanceKM float64 `json:"distance_km"`
	Distance   string  `json:"distance"`
	MapsURL    string  `json:"maps_url"`
}

func (a *API) nearbyDealershipsHandler(c *gin.Context) {
	var lat, lng *float64
	if v, err := queryFloat(c, "lat"); err == nil {
		lat = &v
	}
	if v, err := queryFloat(c, "lng"); err == nil {
		lng = &v
	}

	p, ok := a.resolvePoint(lat, lng)
	if !ok {
		fail(c, http.StatusBadRequest, "no location known; pass lat and lng or set one via /api/location/set")
		return
	}

	dealers := a.catalog.Dealerships()
	nearby := make([]nearbyDealership, 0, len(dealers))
	for _, d := range dealers {
		km := location.Distance(p, location.Point{Latitude: d.Latitude, Longitude: d.Longitude})
		nearby = append(nearby, nearbyDealership{
			Dealership: d,
			DistanceKM: km,
			Distance:   location.FormatDistance(km),
			MapsURL:    location.SearchURL(d),
		})
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceKM < nearby[j].DistanceKM })

	respond(c, http.StatusOK, gin.H{"dealerships": nearby})
}

func (a *API) resolvePoint(lat, lng *float64) (location.Point, bool) {
	if lat != nil && lng != nil {
		return location.Point{Latitude: *lat, Longitude: *lng}, true
	}
	return a.position.Get()
}

func queryFloat(c *gin.Context, name string) (float64, error) {
	return strconv.ParseFloat(c.Query(name), 64)
}
