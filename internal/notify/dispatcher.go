// Package notify turns a stored booking into the two notification emails and
// delivers them.
package notify

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nutrilife/booking-api/internal/domain"
	"github.com/nutrilife/booking-api/internal/mail"
)

// Transport delivers a single rendered message. Implemented by
// mail.SMTPSender; mocked in tests.
type Transport interface {
	From() string
	Send(ctx context.Context, msg mail.Message) error
}

// Dispatcher sends the customer confirmation and the admin notice for a
// booking. Both sends run concurrently and the dispatch succeeds only if both
// complete; there is no retry and no partial-success bookkeeping.
type Dispatcher struct {
	transport  Transport
	adminEmail string
	senderName string
	timeout    time.Duration
}

func NewDispatcher(transport Transport, adminEmail, senderName string, timeout time.Duration) *Dispatcher {
	if senderName == "" {
		senderName = "NutriLife"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{transport: transport, adminEmail: adminEmail, senderName: senderName, timeout: timeout}
}

// Dispatch renders and sends both emails. The returned error is a
// *domain.DispatchError carrying the first underlying send failure.
func (d *Dispatcher) Dispatch(ctx context.Context, booking *domain.Booking) error {
	customerBody, err := mail.RenderCustomer(booking)
	if err != nil {
		return &domain.DispatchError{BookingID: booking.BookingID, Err: err}
	}
	adminBody, err := mail.RenderAdmin(booking)
	if err != nil {
		return &domain.DispatchError{BookingID: booking.BookingID, Err: err}
	}

	adminTo := d.adminEmail
	if adminTo == "" {
		adminTo = d.transport.From()
	}

	// The original never bounds this wait; a wedged relay would hang the
	// request forever. Cap it here.
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.transport.Send(ctx, mail.Message{
			FromName: d.senderName,
			To:       booking.Email,
			Subject:  mail.CustomerSubject(booking),
			HTML:     customerBody,
		})
	})
	g.Go(func() error {
		return d.transport.Send(ctx, mail.Message{
			FromName: d.senderName + " Bookings",
			To:       adminTo,
			Subject:  mail.AdminSubject(booking),
			HTML:     adminBody,
		})
	})

	if err := g.Wait(); err != nil {
		return &domain.DispatchError{BookingID: booking.BookingID, Err: err}
	}
	return nil
}
