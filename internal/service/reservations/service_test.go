package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	customerRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/customer"
	reservationRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/Salon-BookingService/internal/service/reservations/models"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

type fakeReservationRepo struct {
	byID       map[int64]*domain.Reservation
	filtered   []*domain.Reservation
	cancelled  map[int64]string
	statusSets map[int64]domain.ReservationStatus
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		byID:       map[int64]*domain.Reservation{},
		cancelled:  map[int64]string{},
		statusSets: map[int64]domain.ReservationStatus{},
	}
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.filtered, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	f.statusSets[id] = status
	f.byID[id].Status = status
	return nil
}

func (f *fakeReservationRepo) Cancel(ctx context.Context, id int64, reason string) error {
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	f.cancelled[id] = reason
	f.byID[id].Status = domain.StatusCancelled
	f.byID[id].CancelledAt = ptr.Ptr(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	return nil
}

type fakeCustomerRepo struct {
	byID map[int64]*domain.Customer
	err  error
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func testReservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		CustomerID:      7,
		BookingDate:     time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          status,
		ServiceIDs:      []int64{1},
		ServiceNames:    "Стрижка",
		TotalPrice:      1500,
	}
}

func TestGetByID_EnrichesCustomerData(t *testing.T) {
	reservations := newFakeReservationRepo()
	reservations.byID[1] = testReservation(1, domain.StatusConfirmed)
	customers := &fakeCustomerRepo{byID: map[int64]*domain.Customer{
		7: {ID: 7, Name: "Анна", Phone: "+79990001122"},
	}}

	svc := NewService(reservations, customers, testLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Анна", resp.CustomerName)
	assert.Equal(t, "+79990001122", resp.CustomerPhone)
}

func TestGetByID_CustomerLookupFailureIsNotFatal(t *testing.T) {
	reservations := newFakeReservationRepo()
	reservations.byID[1] = testReservation(1, domain.StatusConfirmed)
	customers := &fakeCustomerRepo{err: errors.New("db down")}

	svc := NewService(reservations, customers, testLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, resp.CustomerName)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeReservationRepo(), &fakeCustomerRepo{}, testLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := NewService(newFakeReservationRepo(), &fakeCustomerRepo{}, testLogger{})

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{
		Status: ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	reservations := newFakeReservationRepo()
	reservations.byID[1] = testReservation(1, domain.StatusConfirmed)

	svc := NewService(reservations, &fakeCustomerRepo{}, testLogger{})

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		CancellationReason: ptr.Ptr("клиент попросил перенести"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, "клиент попросил перенести", reservations.cancelled[1])
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, "2025-06-10T12:00:00Z", *resp.CancelledAt)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	reservations := newFakeReservationRepo()
	reservations.byID[1] = testReservation(1, domain.StatusCancelled)

	svc := NewService(reservations, &fakeCustomerRepo{}, testLogger{})

	_, err := svc.Cancel(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_CompletedCannotBeCancelled(t *testing.T) {
	reservations := newFakeReservationRepo()
	reservations.byID[1] = testReservation(1, domain.StatusCompleted)

	svc := NewService(reservations, &fakeCustomerRepo{}, testLogger{})

	_, err := svc.Cancel(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestUpdateStatus(t *testing.T) {
	reservations := newFakeReservationRepo()
	reservations.byID[1] = testReservation(1, domain.StatusConfirmed)

	svc := NewService(reservations, &fakeCustomerRepo{}, testLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, domain.StatusCompleted, reservations.statusSets[1])
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	reservations := newFakeReservationRepo()
	reservations.byID[1] = testReservation(1, domain.StatusConfirmed)

	svc := NewService(reservations, &fakeCustomerRepo{}, testLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(newFakeReservationRepo(), &fakeCustomerRepo{}, testLogger{})

	_, err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
