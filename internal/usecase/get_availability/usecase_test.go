package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

type fakeSettings struct {
	value *domain.BusinessSettings
}

func (f *fakeSettings) Get(ctx context.Context, forceRefresh bool) *domain.BusinessSettings {
	return f.value
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	calls        int
}

func (f *fakeReservationRepo) GetForRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type fakeBlockedRepo struct {
	blocks []*domain.BlockedTime
	err    error
	calls  int
}

func (f *fakeBlockedRepo) GetForDate(ctx context.Context, date time.Time, weekday time.Weekday) ([]*domain.BlockedTime, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.blocks, nil
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
		CloseTime: "12:00",
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

// 2025-06-16 - понедельник
var testDate = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func newTestUseCase(
	settings *domain.BusinessSettings,
	reservations *fakeReservationRepo,
	blocked *fakeBlockedRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(&fakeSettings{value: settings}, reservations, blocked, testLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

// anotherDay - момент в другой день, чтобы отсечка "сегодня" не срабатывала
func anotherDay(t *testing.T) time.Time {
	return time.Date(2025, 6, 10, 12, 0, 0, 0, mskLocation(t))
}

func mskReservation(t *testing.T, hour, minute int, status domain.ReservationStatus) *domain.Reservation {
	t.Helper()
	startAt := time.Date(2025, 6, 16, hour, minute, 0, 0, mskLocation(t)).UTC()
	return &domain.Reservation{
		StartAt:         startAt,
		DurationMinutes: 30,
		Status:          status,
	}
}

func TestExecute_AllSlotsAvailable(t *testing.T) {
	uc := newTestUseCase(testSettings(), &fakeReservationRepo{}, &fakeBlockedRepo{}, anotherDay(t))

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	assert.False(t, resp.DayOff)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, resp.AllSlots)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, resp.Available)
	assert.Empty(t, resp.Booked)
	assert.Empty(t, resp.Blocked)
	assert.Equal(t, "Europe/Moscow", resp.Timezone)
	assert.Equal(t, 30, resp.SlotDurationMinutes)
}

func TestExecute_BookedAndBlockedPartition(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		mskReservation(t, 10, 30, domain.StatusConfirmed),
	}}
	blocked := &fakeBlockedRepo{blocks: []*domain.BlockedTime{
		{
			StartTime: ptr.Ptr(types.TimeString("11:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:30")),
		},
	}}
	uc := newTestUseCase(testSettings(), reservations, blocked, anotherDay(t))

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00", "11:30"}, resp.Available)
	assert.Equal(t, []types.TimeString{"10:30"}, resp.Booked)
	assert.Equal(t, []types.TimeString{"11:00"}, resp.Blocked)
}

func TestExecute_BookedWinsOverBlocked(t *testing.T) {
	// Слот и занят, и заблокирован: показываем его как занятый
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		mskReservation(t, 10, 30, domain.StatusConfirmed),
	}}
	blocked := &fakeBlockedRepo{blocks: []*domain.BlockedTime{
		{
			StartTime: ptr.Ptr(types.TimeString("10:30")),
			EndTime:   ptr.Ptr(types.TimeString("11:00")),
		},
	}}
	uc := newTestUseCase(testSettings(), reservations, blocked, anotherDay(t))

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:30"}, resp.Booked)
	assert.Empty(t, resp.Blocked)
	assert.NotContains(t, resp.Available, types.TimeString("10:30"))
}

func TestExecute_AdminSeesBlockedAsAvailable(t *testing.T) {
	blocked := &fakeBlockedRepo{blocks: []*domain.BlockedTime{{}}}
	uc := newTestUseCase(testSettings(), &fakeReservationRepo{}, blocked, anotherDay(t))

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeAdmin})
	require.NoError(t, err)

	// Блокировки для админа не читаются вовсе
	assert.Equal(t, 0, blocked.calls)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, resp.Available)
	assert.Empty(t, resp.Blocked)
}

func TestExecute_DayOff(t *testing.T) {
	settings := testSettings()
	settings.WorkingDays = []time.Weekday{time.Tuesday}

	reservations := &fakeReservationRepo{}
	blocked := &fakeBlockedRepo{}
	uc := newTestUseCase(settings, reservations, blocked, anotherDay(t))

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	assert.True(t, resp.DayOff)
	assert.Empty(t, resp.Available)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, resp.Blocked)

	// В нерабочий день записи и блокировки не читаются
	assert.Equal(t, 0, reservations.calls)
	assert.Equal(t, 0, blocked.calls)
}

func TestExecute_LunchBreakRemovedFromGrid(t *testing.T) {
	settings := testSettings()
	settings.LunchBreak = domain.LunchBreak{Enabled: true, Start: "10:30", End: "11:00"}

	uc := newTestUseCase(settings, &fakeReservationRepo{}, &fakeBlockedRepo{}, anotherDay(t))

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	// Обеденный слот исчезает из сетки целиком, а не уходит в Blocked
	assert.Equal(t, []types.TimeString{"10:00", "11:00", "11:30"}, resp.Available)
	assert.Empty(t, resp.Blocked)
}

func TestExecute_SameDayCutoff(t *testing.T) {
	// Сейчас 10:45 по салону: слоты 10:00, 10:30 в прошлом, 10:45 не на сетке
	now := time.Date(2025, 6, 16, 10, 45, 0, 0, mskLocation(t))
	uc := newTestUseCase(testSettings(), &fakeReservationRepo{}, &fakeBlockedRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"11:00", "11:30"}, resp.Available)
	// Прошедшие слоты не попадают ни в одну категорию
	assert.Empty(t, resp.Booked)
	assert.Empty(t, resp.Blocked)
}

func TestExecute_SameDayCutoffStrictlyAfter(t *testing.T) {
	// Ровно 11:00 + зазор 0: слот 11:00 уже не предлагается
	now := time.Date(2025, 6, 16, 11, 0, 0, 0, mskLocation(t))
	uc := newTestUseCase(testSettings(), &fakeReservationRepo{}, &fakeBlockedRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"11:30"}, resp.Available)
}

func TestExecute_SameDayMinBookingGap(t *testing.T) {
	settings := testSettings()
	settings.MinBookingGapMinutes = 60

	// 10:10 + 60 минут зазора = 11:10: доступен только 11:30
	now := time.Date(2025, 6, 16, 10, 10, 0, 0, mskLocation(t))
	uc := newTestUseCase(settings, &fakeReservationRepo{}, &fakeBlockedRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"11:30"}, resp.Available)
}

func TestExecute_SameDayGapPastMidnight(t *testing.T) {
	settings := testSettings()
	settings.MinBookingGapMinutes = 120

	// 23:30 + 120 минут выходит за полночь: на сегодня слотов не осталось
	now := time.Date(2025, 6, 16, 23, 30, 0, 0, mskLocation(t))
	uc := newTestUseCase(settings, &fakeReservationRepo{}, &fakeBlockedRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	assert.Empty(t, resp.Available)
}

func TestExecute_BookedDeduplicatedAndOffGridShown(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		mskReservation(t, 11, 0, domain.StatusConfirmed),
		mskReservation(t, 11, 0, domain.StatusPending),
		// Запись вне сетки (осталась от старых настроек)
		mskReservation(t, 10, 15, domain.StatusConfirmed),
	}}
	uc := newTestUseCase(testSettings(), reservations, &fakeBlockedRepo{}, anotherDay(t))

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:15", "11:00"}, resp.Booked)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:30"}, resp.Available)
}

func TestExecute_CancelledReservationsIgnored(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		mskReservation(t, 10, 0, domain.StatusCancelled),
	}}
	uc := newTestUseCase(testSettings(), reservations, &fakeBlockedRepo{}, anotherDay(t))

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	assert.Empty(t, resp.Booked)
	assert.Contains(t, resp.Available, types.TimeString("10:00"))
}

func TestExecute_IsIdempotent(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		mskReservation(t, 10, 30, domain.StatusConfirmed),
	}}
	blocked := &fakeBlockedRepo{blocks: []*domain.BlockedTime{
		{
			StartTime: ptr.Ptr(types.TimeString("11:00")),
			EndTime:   ptr.Ptr(types.TimeString("11:30")),
		},
	}}
	uc := newTestUseCase(testSettings(), reservations, blocked, anotherDay(t))
	req := &Request{Date: testDate, UserType: domain.UserTypeCustomer}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Повторный расчет без записей между вызовами дает тот же результат
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExecute_CategoriesAreDisjoint(t *testing.T) {
	// Слот 10:30 одновременно занят и заблокирован, блокировка шире сетки
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		mskReservation(t, 10, 30, domain.StatusConfirmed),
		mskReservation(t, 11, 30, domain.StatusPending),
	}}
	blocked := &fakeBlockedRepo{blocks: []*domain.BlockedTime{
		{
			StartTime: ptr.Ptr(types.TimeString("10:30")),
			EndTime:   ptr.Ptr(types.TimeString("11:30")),
		},
	}}
	uc := newTestUseCase(testSettings(), reservations, blocked, anotherDay(t))

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	require.NoError(t, err)

	seen := make(map[types.TimeString]string)
	for _, s := range resp.Available {
		seen[s] = "available"
	}
	for _, s := range resp.Booked {
		if prev, ok := seen[s]; ok {
			t.Fatalf("slot %s is both %s and booked", s, prev)
		}
		seen[s] = "booked"
	}
	for _, s := range resp.Blocked {
		if prev, ok := seen[s]; ok {
			t.Fatalf("slot %s is both %s and blocked", s, prev)
		}
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(testSettings(), &fakeReservationRepo{}, &fakeBlockedRepo{}, anotherDay(t))

	_, err := uc.Execute(context.Background(), &Request{UserType: domain.UserTypeCustomer})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate, UserType: "manager"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrors(t *testing.T) {
	uc := newTestUseCase(
		testSettings(),
		&fakeReservationRepo{err: errors.New("db down")},
		&fakeBlockedRepo{},
		anotherDay(t),
	)
	_, err := uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	assert.ErrorIs(t, err, ErrInternal)

	uc = newTestUseCase(
		testSettings(),
		&fakeReservationRepo{},
		&fakeBlockedRepo{err: errors.New("db down")},
		anotherDay(t),
	)
	_, err = uc.Execute(context.Background(), &Request{Date: testDate, UserType: domain.UserTypeCustomer})
	assert.ErrorIs(t, err, ErrInternal)
}
