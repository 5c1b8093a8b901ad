// Package catalog holds the dealership's seeded inventory: bike models,
// service packages and showroom locations. The data is read-only after
// startup and served directly by the listing endpoints.
package catalog

import (
	"strings"

	"github.com/goccy/go-json"
)

type Category int

const (
	Commuter Category = iota
	Sports
	Cruiser
	Adventure
	Scooter
)

func (c Category) String() string {
	return [...]string{"commuter", "sports", "cruiser", "adventure", "scooter"}[c]
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Bike represents a motorcycle model on the showroom floor.
type Bike struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	EngineCC    int      `json:"engine_cc"`
	Mileage     float64  `json:"mileage"`
	Features    []string `json:"features"`
	Colors      []string `json:"colors"`
	InStock     bool     `json:"in_stock"`
	Description string   `json:"description"`
}

// ServicePackage is a fixed-price maintenance offering.
type ServicePackage struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DurationHours int      `json:"duration"`
	Included      []string `json:"services_included"`
}

// Dealership is a physical showroom location.
type Dealership struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	City         string            `json:"city"`
	State        string            `json:"state"`
	Phone        string            `json:"phone"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	WorkingHours map[string]string `json:"working_hours"`
}

type Catalog struct {
	bikes    []Bike
	services []ServicePackage
	dealers  []Dealership
}

// New returns a catalog populated with the seed inventory.
func New() *Catalog {
	return &Catalog{
		bikes:    seedBikes(),
		services: seedServices(),
		dealers:  seedDealerships(),
	}
}

func (c *Catalog) Bikes() []Bike {
	return c.bikes
}

func (c *Catalog) Services() []ServicePackage {
	return c.services
}

func (c *Catalog) Dealerships() []Dealership {
	return c.dealers
}

// Bike looks up a bike by its identifier.
func (c *Catalog) Bike(id string) (Bike, bool) {
	for _, b := range c.bikes {
		if b.ID == id {
			return b, true
		}
	}
	return Bike{}, false
}

// Service matches a package by id or (case-insensitive) display name.
func (c *Catalog) Service(idOrName string) (ServicePackage, bool) {
	for _, s := range c.services {
		if s.ID == idOrName || strings.EqualFold(s.Name, idOrName) {
			return s, true
		}
	}
	return ServicePackage{}, false
}

// Search matches bikes whose name, brand or any feature contains the query.
func (c *Catalog) Search(query string) []Bike {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []Bike
	for _, b := range c.bikes {
		if strings.Contains(strings.ToLower(b.Name), query) ||
			strings.Contains(strings.ToLower(b.Brand), query) {
			results = append(results, b)
			continue
		}
		for _, f := range b.Features {
			if strings.Contains(strings.ToLower(f), query) {
				results = append(results, b)
				break
			}
		}
	}
	return results
}

// BikesByCategory returns all bikes in the given category.
func (c *Catalog) BikesByCategory(category Category) []Bike {
	var results []Bike
	for _, b := range c.bikes {
		if b.Category == category {
			results = append(results, b)
		}
	}
	return results
}
