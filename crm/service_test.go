package crm

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/everylingua/dealership-backend/catalog"
	"github.com/everylingua/dealership-backend/notify"
)

func newTestService() (*Service, *MemoryStore, *notify.FakeMailer, *notify.FakeSMSSender) {
	store := NewMemoryStore()
	mailer := notify.NewFakeMailer()
	sms := notify.NewFakeSMSSender()
	svc := NewService(store, catalog.New(), mailer, sms, slog.Default())
	return svc, store, mailer, sms
}

func TestBookTestRide(t *testing.T) {
	ctx := context.Background()
	svc, store, mailer, sms := newTestService()

	result, err := svc.BookTestRide(ctx, TestRideRequest{
		Name:      "Arjun Mehta",
		Phone:     "9876501234",
		BikeModel: "Classic 350",
		Date:      "2026-09-05",
		Email:     "arjun@example.com",
		City:      "Mumbai",
	})
	if err != nil {
		t.Fatalf("book test ride: %v", err)
	}

	if !strings.HasPrefix(result.BookingID, "TR") {
		t.Errorf("booking id = %q, want TR prefix", result.BookingID)
	}

	customer, err := store.GetCustomer(ctx, "cust_9876501234_"+result.BookingID[2:10])
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if customer.Status != StatusBookedTestRide {
		t.Errorf("customer status = %s, want %s", customer.Status, StatusBookedTestRide)
	}

	bookings, err := store.BookingsByCustomer(ctx, customer.ID)
	if err != nil {
		t.Fatalf("bookings: %v", err)
	}
	if len(bookings) != 1 || bookings[0].Type != BookingTestRide {
		t.Fatalf("bookings = %+v, want one test ride", bookings)
	}

	if len(mailer.Sent()) != 1 {
		t.Errorf("expected 1 confirmation email, got %d", len(mailer.Sent()))
	}
	if len(sms.Sent()) != 1 {
		t.Errorf("expected 1 confirmation sms, got %d", len(sms.Sent()))
	}
	if comms := store.Communications(); len(comms) != 2 {
		t.Errorf("expected 2 recorded communications, got %d", len(comms))
	}
}

func TestBookTestRideWithoutEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, mailer, sms := newTestService()

	_, err := svc.BookTestRide(ctx, TestRideRequest{
		Name:      "Arjun Mehta",
		Phone:     "9876501234",
		BikeModel: "Himalayan",
		Date:      "2026-09-05",
	})
	if err != nil {
		t.Fatalf("book test ride: %v", err)
	}

	if len(mailer.Sent()) != 0 {
		t.Errorf("expected no email without an address, got %d", len(mailer.Sent()))
	}
	if len(sms.Sent()) != 1 {
		t.Errorf("expected 1 sms, got %d", len(sms.Sent()))
	}
}

func TestBookService(t *testing.T) {
	ctx := context.Background()
	svc, _, mailer, _ := newTestService()

	result, err := svc.BookService(ctx, ServiceRequest{
		Name:        "Kavita Iyer",
		Phone:       "9876509999",
		BikeModel:   "Pulsar 220F",
		ServiceType: "Premium Service",
		Date:        "2026-09-10",
		Email:       "kavita@example.com",
	})
	if err != nil {
		t.Fatalf("book service: %v", err)
	}

	if !strings.HasPrefix(result.BookingID, "SV") {
		t.Errorf("booking id = %q, want SV prefix", result.BookingID)
	}
	if !strings.Contains(result.Message, "Premium Service") {
		t.Errorf("message %q should name the package", result.Message)
	}
	if len(mailer.Sent()) != 1 {
		t.Errorf("expected 1 email, got %d", len(mailer.Sent()))
	}
}

func TestBookServiceUnknownType(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.BookService(context.Background(), ServiceRequest{
		Name:        "Kavita Iyer",
		Phone:       "9876509999",
		BikeModel:   "Pulsar 220F",
		ServiceType: "gold-plated",
		Date:        "2026-09-10",
	})
	if !errors.Is(err, ErrUnknownService) {
		t.Errorf("err = %v, want ErrUnknownService", err)
	}
}

func TestNotificationFailureDoesNotFailBooking(t *testing.T) {
	ctx := context.Background()
	svc, store, mailer, _ := newTestService()
	mailer.Err = errors.New("smtp down")

	result, err := svc.BookTestRide(ctx, TestRideRequest{
		Name:      "Arjun Mehta",
		Phone:     "9876501234",
		BikeModel: "Classic 350",
		Date:      "2026-09-05",
		Email:     "arjun@example.com",
	})
	if err != nil {
		t.Fatalf("booking should survive a notification failure: %v", err)
	}
	if result.BookingID == "" {
		t.Fatal("expected a booking id")
	}

	var failed bool
	for _, comm := range store.Communications() {
		if comm.Channel == ChannelEmail && comm.Status == "failed" {
			failed = true
		}
	}
	if !failed {
		t.Error("expected a failed email communication record")
	}
}

func TestCustomerDashboard(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()

	result, err := svc.BookTestRide(ctx, TestRideRequest{
		Name:      "Arjun Mehta",
		Phone:     "9876501234",
		BikeModel: "Classic 350",
		Date:      "2026-09-05",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	dash, err := svc.CustomerDashboard(ctx, "cust_9876501234_"+result.BookingID[2:10])
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.Customer.Name != "Arjun Mehta" {
		t.Errorf("customer name = %q", dash.Customer.Name)
	}
	if len(dash.Bookings) != 1 {
		t.Errorf("bookings = %d, want 1", len(dash.Bookings))
	}

	if _, err := svc.CustomerDashboard(ctx, "cust_none"); !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("err = %v, want ErrCustomerNotFound", err)
	}
}
