package crm

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

var _ Store = (*Repository)(nil)

func (r *Repository) UpsertCustomer(ctx context.Context, c *Customer) error {
	return r.db.GetContext(ctx, c, upsertCustomerQuery,
		c.ID, c.Name, c.Phone, c.Email, c.City, c.PreferredBikes, c.Status, c.Notes)
}

const upsertCustomerQuery = `
INSERT INTO customers (id, name, phone, email, city, preferred_bikes, status, created_at, last_contact, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now(), $8)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    email = EXCLUDED.email,
    city = EXCLUDED.city,
    preferred_bikes = EXCLUDED.preferred_bikes,
    status = EXCLUDED.status,
    last_contact = now()
RETURNING *
`

func (r *Repository) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	var c Customer
	err := r.db.GetContext(ctx, &c, getCustomerQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const getCustomerQuery = `SELECT * FROM customers WHERE id = $1`

func (r *Repository) CreateBooking(ctx context.Context, b *Booking) error {
	return r.db.GetContext(ctx, b, createBookingQuery,
		b.ID, b.CustomerID, b.Type, b.BikeModel, b.ServiceType, b.Date, b.Status, b.Notes)
}

const createBookingQuery = `
INSERT INTO bookings (id, customer_id, type, bike_model, service_type, date, status, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
RETURNING *
`

func (r *Repository) BookingsByCustomer(ctx context.Context, customerID string) ([]Booking, error) {
	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, bookingsByCustomerQuery, customerID)
	return bookings, err
}

const bookingsByCustomerQuery = `SELECT * FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC`

func (r *Repository) RecordCommunication(ctx context.Context, comm *Communication) error {
	_, err := r.db.ExecContext(ctx, recordCommunicationQuery,
		comm.ID, comm.CustomerID, comm.Channel, comm.Subject, comm.Message, comm.Status)
	return err
}

const recordCommunicationQuery = `
INSERT INTO communications (id, customer_id, channel, subject, message, sent_at, status)
VALUES ($1, $2, $3, $4, $5, now(), $6)
`
