// Package crm tracks customers, their bookings and the notifications sent
// to them. Records are written when a booking form is submitted and read
// back by the customer dashboard.
package crm

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type CustomerStatus string

const (
	StatusNew            CustomerStatus = "new"
	StatusContacted      CustomerStatus = "contacted"
	StatusInterested     CustomerStatus = "interested"
	StatusBookedTestRide CustomerStatus = "booked_test_ride"
	StatusBookedService  CustomerStatus = "booked_service"
	StatusPurchased      CustomerStatus = "purchased"
	StatusInactive       CustomerStatus = "inactive"
)

type BookingType string

const (
	BookingTestRide BookingType = "test_ride"
	BookingService  BookingType = "service"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// BikeList is a []string stored as a JSON column.
type BikeList []string

func (l BikeList) Value() (driver.Value, error) {
	if l == nil {
		l = BikeList{}
	}
	return json.Marshal(l)
}

func (l *BikeList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return fmt.Errorf("cannot scan %T into BikeList", src)
}

type Customer struct {
	ID             string         `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Phone          string         `db:"phone" json:"phone"`
	Email          string         `db:"email" json:"email"`
	City           string         `db:"city" json:"city"`
	PreferredBikes BikeList       `db:"preferred_bikes" json:"preferred_bikes"`
	Status         CustomerStatus `db:"status" json:"status"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	LastContact    time.Time      `db:"last_contact" json:"last_contact"`
	Notes          string         `db:"notes" json:"notes"`
}

type Booking struct {
	ID          string      `db:"id" json:"id"`
	CustomerID  string      `db:"customer_id" json:"customer_id"`
	Type        BookingType `db:"type" json:"type"`
	BikeModel   string      `db:"bike_model" json:"bike_model"`
	ServiceType string      `db:"service_type" json:"service_type"`
	Date        string      `db:"date" json:"date"`
	Status      string      `db:"status" json:"status"`
	Notes       string      `db:"notes" json:"notes"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}

type Communication struct {
	ID         string    `db:"id" json:"id"`
	CustomerID string    `db:"customer_id" json:"customer_id"`
	Channel    Channel   `db:"channel" json:"channel"`
	Subject    string    `db:"subject" json:"subject"`
	Message    string    `db:"message" json:"message"`
	SentAt     time.Time `db:"sent_at" json:"sent_at"`
	Status     string    `db:"status" json:"status"`
}

var ErrCustomerNotFound = errors.New("customer not found")

// Store is the persistence boundary for CRM records.
type Store interface {
	UpsertCustomer(ctx context.Context, c *Customer) error
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	CreateBooking(ctx context.Context, b *Booking) error
	BookingsByCustomer(ctx context.Context, customerID string) ([]Booking, error)
	RecordCommunication(ctx context.Context, comm *Communication) error
}
