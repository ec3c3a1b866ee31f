package store

import (
	"context"
	"sync"

	"github.com/nutrilife/booking-api/internal/domain"
)

// MemoryStore keeps bookings in an append-only slice guarded by a RWMutex.
// It is the default backend; bookings do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.bookings {
		if s.bookings[i].BookingID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) ListAll(_ context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id, status string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].BookingID == id {
			if status != "" {
				s.bookings[i].Status = status
			}
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

var _ Store = (*MemoryStore)(nil)
