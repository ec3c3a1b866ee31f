// Package store owns the canonical collection of bookings.
package store

import (
	"context"

	"github.com/nutrilife/booking-api/internal/domain"
)

// Store is the persistence contract for bookings. FindByID and UpdateStatus
// return domain.ErrNotFound when no booking matches the id.
type Store interface {
	// Append adds a fully-formed booking; the record is visible to
	// subsequent reads immediately.
	Append(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// ListAll returns all bookings in insertion order.
	ListAll(ctx context.Context) ([]domain.Booking, error)
	// UpdateStatus sets the booking's status and returns the updated record.
	// An empty status leaves the current value unchanged but still returns
	// the booking.
	UpdateStatus(ctx context.Context, id, status string) (*domain.Booking, error)
}
