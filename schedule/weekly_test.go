package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeeklySchedule(t *testing.T) {
	ws := NewWeeklySchedule()

	require.Len(t, ws.Days, 7)
	for i, day := range ws.Days {
		assert.Equal(t, Weekdays[i], day.Day)
		assert.False(t, day.Available)
		assert.Empty(t, day.Slots)
	}
}

func TestToggleAvailability(t *testing.T) {
	t.Run("enabling Monday seeds the default slot", func(t *testing.T) {
		ws := NewWeeklySchedule()

		require.NoError(t, ws.ToggleAvailability(0))

		assert.True(t, ws.Days[0].Available)
		assert.Equal(t, []TimeSlot{{StartTime: "09:00", EndTime: "17:00"}}, ws.Days[0].Slots)
	})

	t.Run("disabling clears slots", func(t *testing.T) {
		ws := NewWeeklySchedule()
		require.NoError(t, ws.ToggleAvailability(2))
		require.NoError(t, ws.AddSlot(2))
		require.Len(t, ws.Days[2].Slots, 2)

		require.NoError(t, ws.ToggleAvailability(2))

		assert.False(t, ws.Days[2].Available)
		assert.Empty(t, ws.Days[2].Slots)
	})

	t.Run("double toggle restores availability but not slots", func(t *testing.T) {
		for dayIndex := 0; dayIndex < 7; dayIndex++ {
			ws := NewWeeklySchedule()

			require.NoError(t, ws.ToggleAvailability(dayIndex))
			require.NoError(t, ws.AddSlot(dayIndex))
			require.NoError(t, ws.ToggleAvailability(dayIndex))

			assert.False(t, ws.Days[dayIndex].Available, "day %d", dayIndex)
			assert.Empty(t, ws.Days[dayIndex].Slots, "day %d", dayIndex)
		}
	})

	t.Run("out of range day index is an error", func(t *testing.T) {
		ws := NewWeeklySchedule()
		assert.ErrorIs(t, ws.ToggleAvailability(-1), ErrDayIndex)
		assert.ErrorIs(t, ws.ToggleAvailability(7), ErrDayIndex)
	})
}

func TestAddAndRemoveSlotRoundTrip(t *testing.T) {
	ws := NewWeeklySchedule()
	require.NoError(t, ws.ToggleAvailability(1))
	require.NoError(t, ws.UpdateSlot(1, 0, "startTime", "08:00"))
	before := append([]TimeSlot(nil), ws.Days[1].Slots...)

	require.NoError(t, ws.AddSlot(1))
	require.NoError(t, ws.RemoveSlot(1, 1))

	assert.Equal(t, before, ws.Days[1].Slots)
}

func TestUpdateSlot(t *testing.T) {
	newSchedule := func(t *testing.T) *WeeklySchedule {
		ws := NewWeeklySchedule()
		require.NoError(t, ws.ToggleAvailability(0))
		return ws
	}

	t.Run("updates start and end times", func(t *testing.T) {
		ws := newSchedule(t)

		require.NoError(t, ws.UpdateSlot(0, 0, "startTime", "08:00"))
		require.NoError(t, ws.UpdateSlot(0, 0, "endTime", "12:00"))

		assert.Equal(t, TimeSlot{StartTime: "08:00", EndTime: "12:00"}, ws.Days[0].Slots[0])
	})

	t.Run("rejects values outside the option set", func(t *testing.T) {
		ws := newSchedule(t)

		assert.ErrorIs(t, ws.UpdateSlot(0, 0, "startTime", "09:15"), ErrInvalidTime)
		assert.ErrorIs(t, ws.UpdateSlot(0, 0, "startTime", "9:00"), ErrInvalidTime)
		assert.Equal(t, TimeSlot{StartTime: "09:00", EndTime: "17:00"}, ws.Days[0].Slots[0])
	})

	t.Run("rejects inverted ranges and leaves slot unchanged", func(t *testing.T) {
		ws := newSchedule(t)

		assert.ErrorIs(t, ws.UpdateSlot(0, 0, "startTime", "18:00"), ErrInvertedRange)
		assert.ErrorIs(t, ws.UpdateSlot(0, 0, "endTime", "09:00"), ErrInvertedRange)
		assert.ErrorIs(t, ws.UpdateSlot(0, 0, "endTime", "08:00"), ErrInvertedRange)
		assert.Equal(t, TimeSlot{StartTime: "09:00", EndTime: "17:00"}, ws.Days[0].Slots[0])
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		ws := newSchedule(t)
		assert.ErrorIs(t, ws.UpdateSlot(0, 0, "duration", "10:00"), ErrUnknownField)
	})
}

func TestRemoveSlot(t *testing.T) {
	t.Run("keeps order and reindexes", func(t *testing.T) {
		ws := NewWeeklySchedule()
		require.NoError(t, ws.ToggleAvailability(4))
		require.NoError(t, ws.AddSlot(4))
		require.NoError(t, ws.AddSlot(4))
		require.NoError(t, ws.UpdateSlot(4, 0, "startTime", "06:00"))
		require.NoError(t, ws.UpdateSlot(4, 2, "startTime", "10:00"))

		require.NoError(t, ws.RemoveSlot(4, 1))

		require.Len(t, ws.Days[4].Slots, 2)
		assert.Equal(t, "06:00", ws.Days[4].Slots[0].StartTime)
		assert.Equal(t, "10:00", ws.Days[4].Slots[1].StartTime)
	})

	t.Run("out of range slot index is a no-op", func(t *testing.T) {
		ws := NewWeeklySchedule()
		require.NoError(t, ws.ToggleAvailability(0))

		require.NoError(t, ws.RemoveSlot(0, 5))
		require.NoError(t, ws.RemoveSlot(0, -1))

		assert.Len(t, ws.Days[0].Slots, 1)
	})

	t.Run("removing from an empty list is a no-op", func(t *testing.T) {
		ws := NewWeeklySchedule()
		require.NoError(t, ws.RemoveSlot(3, 0))
		assert.Empty(t, ws.Days[3].Slots)
	})
}
