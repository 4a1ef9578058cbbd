package create_reservation

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
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

type fakeSettings struct {
	value *domain.BusinessSettings
}

func (f *fakeSettings) Get(ctx context.Context, forceRefresh bool) *domain.BusinessSettings {
	return f.value
}

type fakeReservations struct {
	existing  []*domain.Reservation
	createErr error
	created   *domain.Reservation
}

func (f *fakeReservations) GetForRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	return f.existing, nil
}

func (f *fakeReservations) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *r
	created.ID = 101
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

type fakeBlocked struct {
	blocks []*domain.BlockedTime
	calls  int
}

func (f *fakeBlocked) GetForDate(ctx context.Context, date time.Time, weekday time.Weekday) ([]*domain.BlockedTime, error) {
	f.calls++
	return f.blocks, nil
}

type fakeCustomers struct {
	byPhone    map[string]*domain.Customer
	visitCount int
	created    *domain.Customer
}

func (f *fakeCustomers) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	if c, ok := f.byPhone[phone]; ok {
		return c, nil
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (f *fakeCustomers) Create(ctx context.Context, name, phone string) (*domain.Customer, error) {
	f.created = &domain.Customer{ID: 7, Name: name, Phone: phone}
	return f.created, nil
}

func (f *fakeCustomers) IncrementVisitCount(ctx context.Context, id int64) (int, error) {
	f.visitCount++
	return f.visitCount, nil
}

type fakeCoupons struct {
	created *domain.Coupon
}

func (f *fakeCoupons) Create(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error) {
	created := *c
	created.ID = 1
	created.IssuedAt = time.Now()
	f.created = &created
	return &created, nil
}

type fakeCatalog struct {
	services []*domain.SalonService
	err      error
}

func (f *fakeCatalog) GetByIDs(ctx context.Context, ids []int64) ([]*domain.SalonService, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func mskLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	return loc
}

func testSettings() *domain.BusinessSettings {
	return &domain.BusinessSettings{
		Timezone:  "Europe/Moscow",
		OpenTime:  "10:00",
		CloseTime: "20:00",
		WorkingDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
		SlotDurationMinutes:  30,
		MinBookingGapMinutes: 0,
		LunchBreak:           domain.LunchBreak{Enabled: false, Start: "13:00", End: "14:00"},
		WeekStartDay:         time.Monday,
	}
}

// 2025-06-16 - понедельник; "сейчас" - за неделю до даты записи
var (
	testDate = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	uc           *UseCase
	reservations *fakeReservations
	blocked      *fakeBlocked
	customers    *fakeCustomers
	coupons      *fakeCoupons
	catalog      *fakeCatalog
}

func newFixture(t *testing.T, settings *domain.BusinessSettings) *fixture {
	f := &fixture{
		reservations: &fakeReservations{},
		blocked:      &fakeBlocked{},
		customers:    &fakeCustomers{byPhone: map[string]*domain.Customer{}},
		coupons:      &fakeCoupons{},
		catalog: &fakeCatalog{services: []*domain.SalonService{
			{ID: 1, Name: "Стрижка", Price: 1500, Active: true},
		}},
	}
	f.uc = NewUseCase(
		&fakeSettings{value: settings},
		f.reservations,
		f.blocked,
		f.customers,
		f.coupons,
		f.catalog,
		fakeTxManager{},
		testLogger{},
	)
	f.uc.timeProvider = &fixedTime{now: time.Date(2025, 6, 9, 12, 0, 0, 0, mskLocation(t))}
	return f
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "Анна",
		CustomerPhone: "+79990001122",
		Date:          testDate,
		StartTime:     "10:00",
		ServiceIDs:    []int64{1},
		UserType:      domain.UserTypeCustomer,
	}
}

func TestExecute_CreatesReservation(t *testing.T) {
	f := newFixture(t, testSettings())

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Стрижка", resp.ServiceNames)
	assert.Equal(t, 1500.0, resp.TotalPrice)
	assert.Equal(t, 1, resp.VisitCount)
	assert.Nil(t, resp.Coupon)

	// Момент начала: 10:00 по Москве = 07:00 UTC
	require.NotNil(t, f.reservations.created)
	assert.Equal(t, time.Date(2025, 6, 16, 7, 0, 0, 0, time.UTC), f.reservations.created.StartAt)
}

func TestExecute_DenormalizesServiceNamesAsSingleString(t *testing.T) {
	f := newFixture(t, testSettings())
	f.catalog.services = []*domain.SalonService{
		{ID: 1, Name: "Стрижка", Price: 1500, Active: true},
		{ID: 2, Name: "Окрашивание", Price: 4000, Active: true},
	}

	req := validRequest()
	req.ServiceIDs = []int64{1, 2}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Имена услуг хранятся одной строкой, а не массивом
	assert.Equal(t, "Стрижка, Окрашивание", resp.ServiceNames)
	assert.Equal(t, 5500.0, resp.TotalPrice)
	require.NotNil(t, f.reservations.created)
	assert.Equal(t, "Стрижка, Окрашивание", f.reservations.created.ServiceNames)
}

func TestExecute_ReusesExistingCustomer(t *testing.T) {
	f := newFixture(t, testSettings())
	f.customers.byPhone["+79990001122"] = &domain.Customer{ID: 42, Name: "Анна", Phone: "+79990001122"}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.CustomerID)
	assert.Nil(t, f.customers.created)
}

func TestExecute_ExplicitEndTimeSetsDuration(t *testing.T) {
	f := newFixture(t, testSettings())

	req := validRequest()
	req.EndTime = ptr.Ptr(types.TimeString("11:30"))

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestExecute_FifthVisitIssuesCoupon(t *testing.T) {
	f := newFixture(t, testSettings())
	f.customers.visitCount = 4 // Этот визит станет пятым

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.Coupon)
	assert.Equal(t, domain.CouponDiscountPercent, resp.Coupon.DiscountPercent)
	assert.Equal(t, 5, resp.Coupon.MilestoneVisit)
	assert.NotEmpty(t, resp.Coupon.Code)

	require.NotNil(t, f.coupons.created)
	assert.Equal(t, resp.CustomerID, f.coupons.created.CustomerID)
}

func TestExecute_NonMilestoneVisitNoCoupon(t *testing.T) {
	f := newFixture(t, testSettings())
	f.customers.visitCount = 5 // Этот визит станет шестым

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Nil(t, resp.Coupon)
	assert.Nil(t, f.coupons.created)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture(t, testSettings())

	req := validRequest()
	req.Date = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DayOff(t *testing.T) {
	f := newFixture(t, testSettings())

	req := validRequest()
	// 2025-06-15 - воскресенье
	req.Date = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDayOff)
}

func TestExecute_OffGridTime(t *testing.T) {
	f := newFixture(t, testSettings())

	req := validRequest()
	req.StartTime = "10:15"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	req.StartTime = "21:00"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_LunchSlotRejected(t *testing.T) {
	settings := testSettings()
	settings.LunchBreak = domain.LunchBreak{Enabled: true, Start: "13:00", End: "14:00"}
	f := newFixture(t, settings)

	req := validRequest()
	req.StartTime = "13:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SameDayTooLate(t *testing.T) {
	settings := testSettings()
	settings.MinBookingGapMinutes = 60
	f := newFixture(t, settings)

	// Сейчас 10:30 дня записи: 11:00 нарушает зазор, 12:00 - нет
	f.uc.timeProvider = &fixedTime{now: time.Date(2025, 6, 16, 10, 30, 0, 0, mskLocation(t))}

	req := validRequest()
	req.StartTime = "11:00"
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)

	req.StartTime = "12:00"
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_BlockedTime(t *testing.T) {
	f := newFixture(t, testSettings())
	f.blocked.blocks = []*domain.BlockedTime{
		{
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeBlocked)
}

func TestExecute_AdminBypassesBlockedTime(t *testing.T) {
	f := newFixture(t, testSettings())
	f.blocked.blocks = []*domain.BlockedTime{{}} // Блокировка всего дня

	req := validRequest()
	req.UserType = domain.UserTypeAdmin

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, f.blocked.calls)
}

func TestExecute_SlotOverlap(t *testing.T) {
	f := newFixture(t, testSettings())
	f.reservations.existing = []*domain.Reservation{
		{
			StartAt:         time.Date(2025, 6, 16, 7, 0, 0, 0, time.UTC), // 10:00 МСК
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_TouchingIntervalsDoNotOverlap(t *testing.T) {
	f := newFixture(t, testSettings())
	f.reservations.existing = []*domain.Reservation{
		{
			StartAt:         time.Date(2025, 6, 16, 6, 30, 0, 0, time.UTC), // 09:30-10:00 МСК
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	f := newFixture(t, testSettings())
	f.reservations.existing = []*domain.Reservation{
		{
			StartAt:         time.Date(2025, 6, 16, 7, 0, 0, 0, time.UTC),
			DurationMinutes: 30,
			Status:          domain.StatusCancelled,
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	f := newFixture(t, testSettings())
	f.reservations.createErr = reservationRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_InactiveService(t *testing.T) {
	f := newFixture(t, testSettings())
	f.catalog.services = []*domain.SalonService{
		{ID: 1, Name: "Стрижка", Price: 1500, Active: false},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UnknownService(t *testing.T) {
	f := newFixture(t, testSettings())
	f.catalog.err = errors.New("not found")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestValidateRequest(t *testing.T) {
	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}
	longNotes := string(long)

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "empty name", mutate: func(r *Request) { r.CustomerName = "  " }},
		{name: "short phone", mutate: func(r *Request) { r.CustomerPhone = "123" }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "bad start time", mutate: func(r *Request) { r.StartTime = "25:99" }},
		{name: "end before start", mutate: func(r *Request) { r.EndTime = ptr.Ptr(types.TimeString("09:00")) }},
		{name: "end equals start", mutate: func(r *Request) { r.EndTime = ptr.Ptr(types.TimeString("10:00")) }},
		{name: "no services", mutate: func(r *Request) { r.ServiceIDs = nil }},
		{name: "bad service id", mutate: func(r *Request) { r.ServiceIDs = []int64{0} }},
		{name: "notes too long", mutate: func(r *Request) { r.Notes = &longNotes }},
		{name: "bad user type", mutate: func(r *Request) { r.UserType = "guest" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}

	assert.NoError(t, validateRequest(validRequest()))
}

func TestIsBlockedInterval(t *testing.T) {
	blocks := []*domain.BlockedTime{
		{
			StartTime: ptr.Ptr(types.TimeString("12:00")),
			EndTime:   ptr.Ptr(types.TimeString("13:00")),
		},
	}

	// Пересечение интервалов; соприкосновение границ не считается
	assert.True(t, isBlockedInterval("12:00", 30, blocks))
	assert.True(t, isBlockedInterval("11:30", 60, blocks))
	assert.True(t, isBlockedInterval("12:30", 90, blocks))
	assert.False(t, isBlockedInterval("11:00", 60, blocks))
	assert.False(t, isBlockedInterval("13:00", 30, blocks))

	assert.True(t, isBlockedInterval("10:00", 30, []*domain.BlockedTime{{}}))
	assert.False(t, isBlockedInterval("10:00", 30, nil))
}
