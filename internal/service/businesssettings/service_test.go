package businesssettings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/businesssettings/models"
	"github.com/m04kA/Salon-BookingService/internal/settings"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

type fakeStore struct {
	upserted  map[string]string
	upsertErr error
}

func (f *fakeStore) Upsert(ctx context.Context, values map[string]string) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = values
	return nil
}

type fakeCache struct {
	value       *domain.BusinessSettings
	invalidated bool
	refreshed   bool
}

func (f *fakeCache) Get(ctx context.Context, forceRefresh bool) *domain.BusinessSettings {
	if forceRefresh {
		f.refreshed = true
	}
	return f.value
}

func (f *fakeCache) Invalidate() {
	f.invalidated = true
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *fakeStore, *fakeCache) {
	store := &fakeStore{}
	cache := &fakeCache{value: settings.Defaults()}
	return NewService(store, cache, testLogger{}), store, cache
}

func TestGet(t *testing.T) {
	svc, _, _ := newTestService()

	got := svc.Get(context.Background())
	assert.Equal(t, domain.DefaultTimezone, got.Timezone)
	assert.Equal(t, domain.DefaultOpenTime, got.OpenTime)
}

func TestUpdate_PartialUpdate(t *testing.T) {
	svc, store, cache := newTestService()

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		OpenTime: ptr.Ptr("09:00"),
	})
	require.NoError(t, err)

	// Сохранен полный набор, включая неизмененные ключи
	assert.Equal(t, "09:00", store.upserted[settings.KeyOpenTime])
	assert.Equal(t, domain.DefaultCloseTime, store.upserted[settings.KeyCloseTime])

	// Протокол записи: Invalidate, затем принудительное перечитывание
	assert.True(t, cache.invalidated)
	assert.True(t, cache.refreshed)
	assert.NotNil(t, resp)
}

func TestUpdate_DoesNotMutateCachedValue(t *testing.T) {
	svc, _, cache := newTestService()

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		OpenTime: ptr.Ptr("09:00"),
	})
	require.NoError(t, err)

	// Изменения накладываются на копию, кэшированное значение нетронуто
	assert.Equal(t, domain.DefaultOpenTime, cache.value.OpenTime.String())
}

func TestUpdate_StoreErrorLeavesCacheIntact(t *testing.T) {
	svc, store, cache := newTestService()
	store.upsertErr = errors.New("disk full")

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		OpenTime: ptr.Ptr("09:00"),
	})
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, cache.invalidated)
}

func TestUpdate_ValidationMatrix(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdateSettingsRequest
	}{
		{
			name: "unknown timezone",
			req:  models.UpdateSettingsRequest{Timezone: ptr.Ptr("Mars/Olympus")},
		},
		{
			name: "bad open time",
			req:  models.UpdateSettingsRequest{OpenTime: ptr.Ptr("25:00")},
		},
		{
			name: "open not before close",
			req: models.UpdateSettingsRequest{
				OpenTime:  ptr.Ptr("20:00"),
				CloseTime: ptr.Ptr("10:00"),
			},
		},
		{
			name: "slot duration not allowed",
			req:  models.UpdateSettingsRequest{SlotDurationMinutes: ptr.Ptr(25)},
		},
		{
			name: "negative gap",
			req:  models.UpdateSettingsRequest{MinBookingGapMinutes: ptr.Ptr(-1)},
		},
		{
			name: "gap too large",
			req:  models.UpdateSettingsRequest{MinBookingGapMinutes: ptr.Ptr(domain.MaxBookingGapMinutes + 1)},
		},
		{
			name: "empty working days",
			req:  models.UpdateSettingsRequest{WorkingDays: &[]int{}},
		},
		{
			name: "working day out of range",
			req:  models.UpdateSettingsRequest{WorkingDays: &[]int{1, 7}},
		},
		{
			name: "duplicate working days",
			req:  models.UpdateSettingsRequest{WorkingDays: &[]int{1, 1}},
		},
		{
			name: "lunch start not before end",
			req: models.UpdateSettingsRequest{
				LunchBreak: &models.LunchBreakPayload{Enabled: true, Start: "14:00", End: "13:00"},
			},
		},
		{
			name: "lunch outside working hours",
			req: models.UpdateSettingsRequest{
				LunchBreak: &models.LunchBreakPayload{Enabled: true, Start: "09:00", End: "11:00"},
			},
		},
		{
			name: "week start not allowed",
			req:  models.UpdateSettingsRequest{WeekStartDay: ptr.Ptr(int(time.Wednesday))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, cache := newTestService()

			_, err := svc.Update(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, store.upserted)
			assert.False(t, cache.invalidated)
		})
	}
}

func TestUpdate_DisabledLunchBreakNotValidated(t *testing.T) {
	svc, _, _ := newTestService()

	// Выключенный обед с некорректными границами не мешает сохранению
	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		LunchBreak: &models.LunchBreakPayload{Enabled: false, Start: "bad", End: "worse"},
	})
	assert.NoError(t, err)
}
