package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

type warnRecorder struct {
	messages []string
}

func (r *warnRecorder) Warn(format string, v ...interface{}) {
	r.messages = append(r.messages, format)
}

func TestNewNormalizer_KnownZone(t *testing.T) {
	log := &warnRecorder{}
	n := NewNormalizer("Asia/Yekaterinburg", log)

	assert.Equal(t, "Asia/Yekaterinburg", n.Name())
	assert.Empty(t, log.messages)
}

func TestNewNormalizer_UnknownZoneFallsBack(t *testing.T) {
	log := &warnRecorder{}
	n := NewNormalizer("Mars/Olympus", log)

	assert.Equal(t, domain.DefaultTimezone, n.Name())
	assert.Len(t, log.messages, 1)
}

func TestNormalizer_RoundTrip(t *testing.T) {
	n := NewNormalizer("Europe/Moscow", nil)

	// 10:00 по Москве = 07:00 UTC
	local, err := n.ParseBusinessDateTime("2025-06-15", "10:00")
	require.NoError(t, err)

	stored := n.ToStorageTime(local)
	assert.Equal(t, time.UTC, stored.Location())
	assert.Equal(t, 7, stored.Hour())

	back := n.ToBusinessTime(stored)
	assert.Equal(t, 10, back.Hour())
	assert.Equal(t, 0, back.Minute())
	assert.True(t, back.Equal(local))
}

func TestNormalizer_ParseBusinessDateTime(t *testing.T) {
	n := NewNormalizer("Europe/Moscow", nil)

	// Пустое время означает полночь
	midnight, err := n.ParseBusinessDateTime("2025-06-15", "")
	require.NoError(t, err)
	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, 15, midnight.Day())

	_, err = n.ParseBusinessDateTime("15.06.2025", "10:00")
	assert.Error(t, err)
}

func TestNormalizer_DayBounds(t *testing.T) {
	n := NewNormalizer("Europe/Moscow", nil)

	// 23:30 UTC 14 июня - это уже 15 июня по Москве
	moment := time.Date(2025, 6, 14, 23, 30, 0, 0, time.UTC)

	start := n.StartOfDay(moment)
	assert.Equal(t, 15, start.Day())
	assert.Equal(t, 0, start.Hour())

	end := n.EndOfDay(moment)
	assert.Equal(t, 15, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.True(t, start.Before(end))
}

func TestNormalizer_IsSameBusinessDay(t *testing.T) {
	n := NewNormalizer("Europe/Moscow", nil)

	// 22:00 UTC и 23:00 UTC 14 июня - оба 15 июня по Москве (UTC+3)
	a := time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC)
	b := time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC)
	assert.True(t, n.IsSameBusinessDay(a, b))

	// 20:00 UTC - еще 14 июня по Москве
	c := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)
	assert.False(t, n.IsSameBusinessDay(a, c))
}
