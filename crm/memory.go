package crm

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used in tests and when running
// without a database.
type MemoryStore struct {
	mu             sync.Mutex
	customers      map[string]Customer
	bookings       []Booking
	communications []Communication
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{customers: make(map[string]Customer)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) UpsertCustomer(ctx context.Context, c *Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.customers[c.ID]; ok {
		c.CreatedAt = existing.CreatedAt
	} else {
		c.CreatedAt = now
	}
	c.LastContact = now
	s.customers[c.ID] = *c
	return nil
}

func (s *MemoryStore) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return &c, nil
}

func (s *MemoryStore) CreateBooking(ctx context.Context, b *Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.CreatedAt = time.Now()
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *MemoryStore) BookingsByCustomer(ctx context.Context, customerID string) ([]Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []Booking
	for i := len(s.bookings) - 1; i >= 0; i-- {
		if s.bookings[i].CustomerID == customerID {
			result = append(result, s.bookings[i])
		}
	}
	return result, nil
}

func (s *MemoryStore) RecordCommunication(ctx context.Context, comm *Communication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.communications = append(s.communications, *comm)
	return nil
}

// Communications returns a copy of the recorded notification log.
func (s *MemoryStore) Communications() []Communication {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Communication, len(s.communications))
	copy(out, s.communications)
	return out
}
