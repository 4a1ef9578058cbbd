package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid", input: "10:00", want: "10:00"},
		{name: "normalizes leading zeros", input: "9:5", want: "09:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "garbage", input: "ten o'clock", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = TimeString("25:00").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	got, err = TimeString("10:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)

	// Выход за границы суток
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:30").IsAfter("09:15"))
	assert.False(t, TimeString("09:15").IsAfter("09:15"))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	// Пустое значение пишется как NULL
	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	// TIME колонки приходят с секундами
	require.NoError(t, ts.Scan("18:30:00"))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 6, 1, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeString)
}
