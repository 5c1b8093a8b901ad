package crm

import (
	"context"
	"errors"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// newTestRepository connects to the database named by DATABASE_URL and
// clears the CRM tables. Tests are skipped when no database is
// configured; schema.sql must have been applied.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := sqlx.Connect("pgx", dbURL)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	for _, table := range []string{"communications", "bookings", "customers"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("failed to clean %s: %v", table, err)
		}
	}

	return NewRepository(db)
}

func TestRepositoryCustomerRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	c := &Customer{
		ID:             "cust_9876501234_20260830",
		Name:           "Arjun Mehta",
		Phone:          "9876501234",
		Email:          "arjun@example.com",
		City:           "Mumbai",
		PreferredBikes: BikeList{"Classic 350"},
		Status:         StatusBookedTestRide,
	}
	if err := repo.UpsertCustomer(ctx, c); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.GetCustomer(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Arjun Mehta" || len(got.PreferredBikes) != 1 {
		t.Errorf("got %+v", got)
	}

	// Second upsert refreshes the record instead of failing.
	c.City = "Pune"
	c.PreferredBikes = BikeList{"Classic 350", "Himalayan"}
	if err := repo.UpsertCustomer(ctx, c); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, err = repo.GetCustomer(ctx, c.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.City != "Pune" || len(got.PreferredBikes) != 2 {
		t.Errorf("after update got %+v", got)
	}
}

func TestRepositoryGetCustomerNotFound(t *testing.T) {
	repo := newTestRepository(t)

	if _, err := repo.GetCustomer(context.Background(), "cust_none"); !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("err = %v, want ErrCustomerNotFound", err)
	}
}

func TestRepositoryBookingsAndCommunications(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	c := &Customer{
		ID:     "cust_9876509999_20260830",
		Name:   "Kavita Iyer",
		Phone:  "9876509999",
		Status: StatusBookedService,
	}
	if err := repo.UpsertCustomer(ctx, c); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	b := &Booking{
		ID:          "SV202608301200",
		CustomerID:  c.ID,
		Type:        BookingService,
		BikeModel:   "Pulsar 220F",
		ServiceType: "standard",
		Date:        "2026-09-10",
		Status:      "confirmed",
	}
	if err := repo.CreateBooking(ctx, b); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	bookings, err := repo.BookingsByCustomer(ctx, c.ID)
	if err != nil {
		t.Fatalf("bookings: %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != b.ID {
		t.Fatalf("bookings = %+v", bookings)
	}

	comm := &Communication{
		ID:         "11111111-1111-1111-1111-111111111111",
		CustomerID: c.ID,
		Channel:    ChannelSMS,
		Message:    "Service booked",
		Status:     "sent",
	}
	if err := repo.RecordCommunication(ctx, comm); err != nil {
		t.Fatalf("record communication: %v", err)
	}
}
