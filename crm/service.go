package crm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/everylingua/dealership-backend/catalog"
	"github.com/everylingua/dealership-backend/notify"
)

var ErrUnknownService = errors.New("unknown service type")

// Service runs the booking workflows: create or refresh the customer
// record, persist the booking, and send confirmations.
type Service struct {
	store   Store
	catalog *catalog.Catalog
	mailer  notify.Mailer
	sms     notify.SMSSender
	logger  *slog.Logger
}

func NewService(store Store, cat *catalog.Catalog, mailer notify.Mailer, sms notify.SMSSender, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		mailer:  mailer,
		sms:     sms,
		logger:  logger,
	}
}

type TestRideRequest struct {
	Name      string
	Phone     string
	BikeModel string
	Date      string
	Email     string
	City      string
}

type ServiceRequest struct {
	Name        string
	Phone       string
	BikeModel   string
	ServiceType string
	Date        string
	Email       string
}

type BookingResult struct {
	BookingID string `json:"booking_id"`
	Message   string `json:"message"`
}

func (s *Service) BookTestRide(ctx context.Context, req TestRideRequest) (*BookingResult, error) {
	customer := &Customer{
		ID:             customerID(req.Phone),
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		City:           req.City,
		PreferredBikes: BikeList{req.BikeModel},
		Status:         StatusBookedTestRide,
	}
	if err := s.store.UpsertCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("upsert customer: %w", err)
	}

	booking := &Booking{
		ID:         bookingID("TR"),
		CustomerID: customer.ID,
		Type:       BookingTestRide,
		BikeModel:  req.BikeModel,
		Date:       req.Date,
		Status:     "confirmed",
	}
	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	subject := fmt.Sprintf("Test Ride Confirmation - %s", booking.ID)
	body := testRideEmail(req.Name, req.BikeModel, req.Date, booking.ID)
	smsText := fmt.Sprintf("Test ride booked for %s on %s. Booking ID: %s", req.BikeModel, req.Date, booking.ID)
	s.notify(ctx, customer, subject, body, smsText)

	return &BookingResult{
		BookingID: booking.ID,
		Message:   fmt.Sprintf("Test ride booked successfully! Booking ID: %s", booking.ID),
	}, nil
}

func (s *Service) BookService(ctx context.Context, req ServiceRequest) (*BookingResult, error) {
	pkg, ok := s.catalog.Service(req.ServiceType)
	if !ok {
		return nil, ErrUnknownService
	}

	customer := &Customer{
		ID:             customerID(req.Phone),
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		PreferredBikes: BikeList{req.BikeModel},
		Status:         StatusBookedService,
	}
	if err := s.store.UpsertCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("upsert customer: %w", err)
	}

	booking := &Booking{
		ID:          bookingID("SV"),
		CustomerID:  customer.ID,
		Type:        BookingService,
		BikeModel:   req.BikeModel,
		ServiceType: pkg.ID,
		Date:        req.Date,
		Status:      "confirmed",
	}
	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	subject := fmt.Sprintf("Service Booking Confirmation - %s", booking.ID)
	body := serviceEmail(req.Name, req.BikeModel, pkg.Name, req.Date, booking.ID)
	smsText := fmt.Sprintf("Service booked for %s on %s. Booking ID: %s", req.BikeModel, req.Date, booking.ID)
	s.notify(ctx, customer, subject, body, smsText)

	return &BookingResult{
		BookingID: booking.ID,
		Message:   fmt.Sprintf("Service booked successfully! Booking ID: %s. Service: %s - ₹%.0f", booking.ID, pkg.Name, pkg.Price),
	}, nil
}

type Dashboard struct {
	Customer *Customer `json:"customer"`
	Bookings []Booking `json:"bookings"`
}

func (s *Service) CustomerDashboard(ctx context.Context, customerID string) (*Dashboard, error) {
	customer, err := s.store.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.store.BookingsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Customer: customer, Bookings: bookings}, nil
}

// notify delivers confirmations and records them. Notification failure is
// logged but never fails the booking.
func (s *Service) notify(ctx context.Context, customer *Customer, subject, body, smsText string) {
	if customer.Email != "" {
		status := "sent"
		if err := s.mailer.Send(ctx, customer.Email, subject, body); err != nil {
			s.logger.ErrorContext(ctx, "failed to send confirmation email", "error", err, "customer", customer.ID)
			status = "failed"
		}
		s.record(ctx, customer.ID, ChannelEmail, subject, body, status)
	}

	status := "sent"
	if err := s.sms.Send(ctx, customer.Phone, smsText); err != nil {
		s.logger.ErrorContext(ctx, "failed to send confirmation sms", "error", err, "customer", customer.ID)
		status = "failed"
	}
	s.record(ctx, customer.ID, ChannelSMS, "", smsText, status)
}

func (s *Service) record(ctx context.Context, customerID string, channel Channel, subject, message, status string) {
	comm := &Communication{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Channel:    channel,
		Subject:    subject,
		Message:    message,
		Status:     status,
	}
	if err := s.store.RecordCommunication(ctx, comm); err != nil {
		s.logger.ErrorContext(ctx, "failed to record communication", "error", err, "customer", customerID)
	}
}

func customerID(phone string) string {
	return fmt.Sprintf("cust_%s_%s", phone, time.Now().Format("20060102"))
}

func bookingID(prefix string) string {
	return prefix + time.Now().Format("200601021504")
}

func testRideEmail(name, bikeModel, date, bookingID string) string {
	return fmt.Sprintf(`Dear %s,

Your test ride for %s has been booked successfully!

Booking Details:
- Date: %s
- Booking ID: %s
- Dealership: EveryLingua Motors

Please bring a valid driving license and arrive 15 minutes before the scheduled time.

For any changes, please contact us at +91-9876543210

Best regards,
EveryLingua Motors Team
`, name, bikeModel, date, bookingID)
}

func serviceEmail(name, bikeModel, serviceName, date, bookingID string) string {
	return fmt.Sprintf(`Dear %s,

Your service appointment has been booked successfully!

Booking Details:
- Bike: %s
- Service: %s
- Date: %s
- Booking ID: %s

Please arrive at the scheduled time with your bike and service book.

For any changes, please contact us at +91-9876543210

Best regards,
EveryLingua Motors Team
`, name, bikeModel, serviceName, date, bookingID)
}
