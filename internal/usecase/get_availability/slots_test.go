package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

func TestGenerateSlotGrid(t *testing.T) {
	grid, err := generateSlotGrid("10:00", "12:00", 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, grid)
}

func TestGenerateSlotGrid_LastSlotEndsAtClose(t *testing.T) {
	// Слот 11:15 закончился бы в 12:00 - он входит; слот, начинающийся в 12:00, нет
	grid, err := generateSlotGrid("10:00", "12:00", 45)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:45", "11:30"}, grid)
}

func TestGenerateSlotGrid_EmptyWhenClosed(t *testing.T) {
	grid, err := generateSlotGrid("12:00", "12:00", 30)
	require.NoError(t, err)
	assert.Empty(t, grid)

	grid, err = generateSlotGrid("14:00", "12:00", 30)
	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestGenerateSlotGrid_StopsAtMidnight(t *testing.T) {
	// Следующий шаг вышел бы за полночь - сетка обрывается без ошибки
	grid, err := generateSlotGrid("23:00", "23:59", 45)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"23:00"}, grid)
}

func TestRemoveLunchSlots(t *testing.T) {
	grid := []types.TimeString{"12:00", "12:30", "13:00", "13:30", "14:00", "14:30"}

	lunch := domain.LunchBreak{Enabled: true, Start: "13:00", End: "14:00"}
	got := removeLunchSlots(grid, lunch)
	// Интервал [start, end): слот 14:00 остается
	assert.Equal(t, []types.TimeString{"12:00", "12:30", "14:00", "14:30"}, got)
}

func TestRemoveLunchSlots_Disabled(t *testing.T) {
	grid := []types.TimeString{"12:00", "13:00", "14:00"}
	lunch := domain.LunchBreak{Enabled: false, Start: "13:00", End: "14:00"}
	assert.Equal(t, grid, removeLunchSlots(grid, lunch))
}

func TestExpandBlockedTimes_Interval(t *testing.T) {
	grid := []types.TimeString{"10:00", "10:30", "11:00", "11:30"}
	blocks := []*domain.BlockedTime{
		{
			StartTime: ptr.Ptr(types.TimeString("10:30")),
			EndTime:   ptr.Ptr(types.TimeString("11:30")),
		},
	}

	blocked := expandBlockedTimes(grid, blocks)
	assert.Len(t, blocked, 2)
	assert.Contains(t, blocked, types.TimeString("10:30"))
	assert.Contains(t, blocked, types.TimeString("11:00"))
}

func TestExpandBlockedTimes_WholeDay(t *testing.T) {
	grid := []types.TimeString{"10:00", "10:30", "11:00"}
	blocks := []*domain.BlockedTime{{}}

	blocked := expandBlockedTimes(grid, blocks)
	assert.Len(t, blocked, len(grid))
	for _, slot := range grid {
		assert.Contains(t, blocked, slot)
	}
}
