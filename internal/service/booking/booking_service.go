package booking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nutrilife/booking-api/internal/bookingid"
	"github.com/nutrilife/booking-api/internal/domain"
	"github.com/nutrilife/booking-api/internal/kafka"
	"github.com/nutrilife/booking-api/internal/store"
	"github.com/nutrilife/booking-api/internal/validate"
)

type BookingUseCase interface {
	Create(ctx context.Context, req validate.BookingRequest) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	SetStatus(ctx context.Context, id, status string) (*domain.Booking, error)
}

// Dispatcher sends the customer and admin notifications for a booking.
type Dispatcher interface {
	Dispatch(ctx context.Context, booking *domain.Booking) error
}

// Cache holds a short-lived copy of the booking list.
type Cache interface {
	GetBookings(ctx context.Context) ([]domain.Booking, error)
	SetBookings(ctx context.Context, bookings []domain.Booking) error
	Invalidate(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	store       store.Store
	dispatcher  Dispatcher
	cache       Cache
	producer    Producer
	eventsTopic string
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func WithEvents(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func NewBookingService(st store.Store, dispatcher Dispatcher, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		store:      st,
		dispatcher: dispatcher,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create validates the request, persists the booking and dispatches the
// notification emails. A dispatch failure is returned together with the
// booking: the record is already committed and is not rolled back.
func (s *BookingService) Create(ctx context.Context, req validate.BookingRequest) (*domain.Booking, error) {
	if err := validate.Booking(req); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		BookingID: bookingid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Package:   domain.Package(req.Package),
		Message:   req.Message,
		Status:    domain.StatusPending,
		Timestamp: time.Now(),
	}

	if err := s.store.Append(ctx, booking); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	s.publish(ctx, kafka.EventBookingCreated, booking)

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.BookingID,
		"package":    booking.Package,
	}).Info("booking created")

	if s.dispatcher != nil {
		if err := s.dispatcher.Dispatch(ctx, booking); err != nil {
			logrus.WithField("booking_id", booking.BookingID).WithError(err).Error("notification dispatch failed")
			return booking, err
		}
		logrus.WithField("booking_id", booking.BookingID).Info("confirmation emails sent")
	}

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.store.FindByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetBookings(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	bookings, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetBookings(ctx, bookings)
	}
	return bookings, nil
}

// SetStatus updates the booking's status. An empty status leaves the current
// value in place and still returns the booking.
func (s *BookingService) SetStatus(ctx context.Context, id, status string) (*domain.Booking, error) {
	booking, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if status != "" {
		s.invalidateCache(ctx)
		s.publish(ctx, kafka.EventBookingStatusChanged, booking)
	}
	return booking, nil
}

func (s *BookingService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logrus.WithError(err).Warn("failed to invalidate booking list cache")
	}
}

// publish mirrors the booking onto the events topic. Delivery is best-effort:
// a failure is logged, never surfaced to the caller.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.NewBookingEvent(eventType, booking)
	if err := s.producer.Publish(ctx, s.eventsTopic, booking.BookingID, event); err != nil {
		logrus.WithFields(logrus.Fields{
			"booking_id": booking.BookingID,
			"event":      eventType,
		}).WithError(err).Warn("failed to publish booking event")
	}
}

var _ BookingUseCase = (*BookingService)(nil)
