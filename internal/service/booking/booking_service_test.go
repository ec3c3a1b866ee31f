package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nutrilife/booking-api/internal/bookingid"
	"github.com/nutrilife/booking-api/internal/domain"
	"github.com/nutrilife/booking-api/internal/validate"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Append(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockStore) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockStore) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockStore) UpdateStatus(ctx context.Context, id, status string) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockCache) SetBookings(ctx context.Context, bookings []domain.Booking) error {
	args := m.Called(ctx, bookings)
	return args.Error(0)
}

func (m *MockCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func validRequest() validate.BookingRequest {
	return validate.BookingRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-1234",
		Date:    "2026-03-01",
		Package: "growth",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	mockStore := &MockStore{}
	mockDispatcher := &MockDispatcher{}

	service := NewBookingService(mockStore, mockDispatcher)

	ctx := context.Background()
	mockStore.On("Append", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockDispatcher.On("Dispatch", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()

	created, err := service.Create(ctx, validRequest())

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.True(t, strings.HasPrefix(created.BookingID, bookingid.Prefix))
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, domain.PackageGrowth, created.Package)
	assert.Equal(t, "Jane Doe", created.Name)
	assert.Empty(t, created.Message)
	assert.False(t, created.Timestamp.IsZero())

	mockStore.AssertExpectations(t)
	mockDispatcher.AssertExpectations(t)
}

func TestBookingService_Create_UniqueIDs(t *testing.T) {
	mockStore := &MockStore{}
	mockDispatcher := &MockDispatcher{}
	service := NewBookingService(mockStore, mockDispatcher)

	ctx := context.Background()
	mockStore.On("Append", ctx, mock.Anything).Return(nil)
	mockDispatcher.On("Dispatch", ctx, mock.Anything).Return(nil)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		created, err := service.Create(ctx, validRequest())
		assert.NoError(t, err)
		_, dup := seen[created.BookingID]
		assert.False(t, dup, "duplicate booking id %s", created.BookingID)
		seen[created.BookingID] = struct{}{}
	}
}

func TestBookingService_Create_ValidationError(t *testing.T) {
	mockStore := &MockStore{}
	mockDispatcher := &MockDispatcher{}
	service := NewBookingService(mockStore, mockDispatcher)

	testCases := []struct {
		name   string
		mutate func(*validate.BookingRequest)
	}{
		{"missing name", func(r *validate.BookingRequest) { r.Name = "" }},
		{"missing email", func(r *validate.BookingRequest) { r.Email = "" }},
		{"missing phone", func(r *validate.BookingRequest) { r.Phone = "" }},
		{"missing date", func(r *validate.BookingRequest) { r.Date = "" }},
		{"missing package", func(r *validate.BookingRequest) { r.Package = "" }},
		{"bad email", func(r *validate.BookingRequest) { r.Email = "foo@bar" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			created, err := service.Create(context.Background(), req)

			assert.Nil(t, created)
			var vErr *domain.ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}

	mockStore.AssertNotCalled(t, "Append")
	mockDispatcher.AssertNotCalled(t, "Dispatch")
}

func TestBookingService_Create_StoreError(t *testing.T) {
	mockStore := &MockStore{}
	mockDispatcher := &MockDispatcher{}
	service := NewBookingService(mockStore, mockDispatcher)

	ctx := context.Background()
	expectedErr := errors.New("store unavailable")
	mockStore.On("Append", ctx, mock.Anything).Return(expectedErr).Once()

	created, err := service.Create(ctx, validRequest())

	assert.Nil(t, created)
	assert.Equal(t, expectedErr, err)

	mockStore.AssertExpectations(t)
	mockDispatcher.AssertNotCalled(t, "Dispatch")
}

func TestBookingService_Create_DispatchFailureKeepsBooking(t *testing.T) {
	mockStore := &MockStore{}
	mockDispatcher := &MockDispatcher{}
	service := NewBookingService(mockStore, mockDispatcher)

	ctx := context.Background()
	dispatchErr := &domain.DispatchError{BookingID: "BOOK1", Err: errors.New("smtp refused")}
	mockStore.On("Append", ctx, mock.Anything).Return(nil).Once()
	mockDispatcher.On("Dispatch", ctx, mock.Anything).Return(dispatchErr).Once()

	created, err := service.Create(ctx, validRequest())

	// Booking is committed before dispatch; the failure comes back alongside it.
	assert.NotNil(t, created)
	var dErr *domain.DispatchError
	assert.ErrorAs(t, err, &dErr)

	mockStore.AssertExpectations(t)
	mockDispatcher.AssertExpectations(t)
}

func TestBookingService_Create_PublishFailureIsBestEffort(t *testing.T) {
	mockStore := &MockStore{}
	mockDispatcher := &MockDispatcher{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockStore, mockDispatcher, WithEvents(mockProducer, "booking_events"))

	ctx := context.Background()
	mockStore.On("Append", ctx, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "booking_events", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	mockDispatcher.On("Dispatch", ctx, mock.Anything).Return(nil).Once()

	created, err := service.Create(ctx, validRequest())

	assert.NoError(t, err)
	assert.NotNil(t, created)

	mockProducer.AssertExpectations(t)
}

func TestBookingService_Get(t *testing.T) {
	mockStore := &MockStore{}
	service := NewBookingService(mockStore, nil)

	ctx := context.Background()
	want := &domain.Booking{BookingID: "BOOK1", Status: domain.StatusPending}
	mockStore.On("FindByID", ctx, "BOOK1").Return(want, nil).Once()

	got, err := service.Get(ctx, "BOOK1")

	assert.NoError(t, err)
	assert.Equal(t, want, got)
	mockStore.AssertExpectations(t)
}

func TestBookingService_Get_NotFound(t *testing.T) {
	mockStore := &MockStore{}
	service := NewBookingService(mockStore, nil)

	ctx := context.Background()
	mockStore.On("FindByID", ctx, "BOOK-missing").Return(nil, domain.ErrNotFound).Once()

	got, err := service.Get(ctx, "BOOK-missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_List_NoCache(t *testing.T) {
	mockStore := &MockStore{}
	service := NewBookingService(mockStore, nil)

	ctx := context.Background()
	want := []domain.Booking{{BookingID: "BOOK1"}, {BookingID: "BOOK2"}}
	mockStore.On("ListAll", ctx).Return(want, nil).Once()

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBookingService_List_CacheHit(t *testing.T) {
	mockStore := &MockStore{}
	mockCache := &MockCache{}
	service := NewBookingService(mockStore, nil, WithCache(mockCache))

	ctx := context.Background()
	cached := []domain.Booking{{BookingID: "BOOK1"}}
	mockCache.On("GetBookings", ctx).Return(cached, nil).Once()

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, got)
	mockStore.AssertNotCalled(t, "ListAll")
}

func TestBookingService_List_CacheMissFillsCache(t *testing.T) {
	mockStore := &MockStore{}
	mockCache := &MockCache{}
	service := NewBookingService(mockStore, nil, WithCache(mockCache))

	ctx := context.Background()
	want := []domain.Booking{{BookingID: "BOOK1"}}
	mockCache.On("GetBookings", ctx).Return(nil, nil).Once()
	mockStore.On("ListAll", ctx).Return(want, nil).Once()
	mockCache.On("SetBookings", ctx, want).Return(nil).Once()

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, want, got)
	mockCache.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestBookingService_SetStatus(t *testing.T) {
	mockStore := &MockStore{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockStore, nil, WithEvents(mockProducer, "booking_events"))

	ctx := context.Background()
	updated := &domain.Booking{BookingID: "BOOK1", Status: "confirmed"}
	mockStore.On("UpdateStatus", ctx, "BOOK1", "confirmed").Return(updated, nil).Once()
	mockProducer.On("Publish", ctx, "booking_events", "BOOK1", mock.Anything).Return(nil).Once()

	got, err := service.SetStatus(ctx, "BOOK1", "confirmed")

	assert.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	mockStore.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_SetStatus_EmptyStatusNoEvent(t *testing.T) {
	mockStore := &MockStore{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockStore, nil, WithEvents(mockProducer, "booking_events"))

	ctx := context.Background()
	unchanged := &domain.Booking{BookingID: "BOOK1", Status: "confirmed"}
	mockStore.On("UpdateStatus", ctx, "BOOK1", "").Return(unchanged, nil).Once()

	got, err := service.SetStatus(ctx, "BOOK1", "")

	assert.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	mockProducer.AssertNotCalled(t, "Publish")
}

func TestBookingService_SetStatus_NotFound(t *testing.T) {
	mockStore := &MockStore{}
	service := NewBookingService(mockStore, nil)

	ctx := context.Background()
	mockStore.On("UpdateStatus", ctx, "BOOK-missing", "confirmed").Return(nil, domain.ErrNotFound).Once()

	got, err := service.SetStatus(ctx, "BOOK-missing", "confirmed")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
