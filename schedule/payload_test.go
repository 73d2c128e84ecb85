package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload(t *testing.T) {
	t.Run("empty schedule produces empty payload", func(t *testing.T) {
		assert.Empty(t, BuildPayload(NewWeeklySchedule()))
	})

	t.Run("single available day", func(t *testing.T) {
		ws := NewWeeklySchedule()
		require.NoError(t, ws.ToggleAvailability(0))
		require.NoError(t, ws.UpdateSlot(0, 0, "startTime", "08:00"))
		require.NoError(t, ws.UpdateSlot(0, 0, "endTime", "12:00"))

		payload := BuildPayload(ws)

		assert.Equal(t, []DayAvailability{
			{Day: "monday", Slots: []TimeSlot{{StartTime: "08:00", EndTime: "12:00"}}},
		}, payload)
	})

	t.Run("skips unavailable days and available days with no slots", func(t *testing.T) {
		ws := NewWeeklySchedule()
		require.NoError(t, ws.ToggleAvailability(1))
		require.NoError(t, ws.ToggleAvailability(3))
		ws.Days[3].Slots = nil // available but degenerate

		payload := BuildPayload(ws)

		require.Len(t, payload, 1)
		assert.Equal(t, "tuesday", payload[0].Day)
	})

	t.Run("payload slots are copies", func(t *testing.T) {
		ws := NewWeeklySchedule()
		require.NoError(t, ws.ToggleAvailability(0))

		payload := BuildPayload(ws)
		payload[0].Slots[0].StartTime = "00:00"

		assert.Equal(t, "09:00", ws.Days[0].Slots[0].StartTime)
	})
}
