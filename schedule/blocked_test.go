package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(date string) func() time.Time {
	parsed, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return parsed }
}

func TestBlockedDates(t *testing.T) {
	t.Run("add then remove leaves the registry empty", func(t *testing.T) {
		b := NewBlockedDates()
		b.now = fixedClock("2025-05-01")

		require.NoError(t, b.Add("2025-06-01"))
		assert.Equal(t, []string{"2025-06-01"}, b.Dates())

		b.Remove("2025-06-01")
		assert.Empty(t, b.Dates())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		b := NewBlockedDates()
		b.now = fixedClock("2025-05-01")

		require.NoError(t, b.Add("2025-07-10"))
		require.NoError(t, b.Add("2025-06-01"))
		require.NoError(t, b.Add("2025-06-15"))

		assert.Equal(t, []string{"2025-07-10", "2025-06-01", "2025-06-15"}, b.Dates())
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		b := NewBlockedDates()
		b.now = fixedClock("2025-05-01")

		require.NoError(t, b.Add("2025-06-01"))
		assert.ErrorIs(t, b.Add("2025-06-01"), ErrAlreadyBlocked)
		assert.Len(t, b.Dates(), 1)
	})

	t.Run("rejects past dates but allows today", func(t *testing.T) {
		b := NewBlockedDates()
		b.now = fixedClock("2025-05-01")

		assert.ErrorIs(t, b.Add("2025-04-30"), ErrPastDate)
		assert.NoError(t, b.Add("2025-05-01"))
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		b := NewBlockedDates()
		assert.ErrorIs(t, b.Add("01-06-2025"), ErrBadDate)
		assert.ErrorIs(t, b.Add("tomorrow"), ErrBadDate)
	})

	t.Run("removing an absent date is a no-op", func(t *testing.T) {
		b := NewBlockedDates()
		b.now = fixedClock("2025-05-01")
		require.NoError(t, b.Add("2025-06-01"))

		b.Remove("2025-06-02")
		assert.Equal(t, []string{"2025-06-01"}, b.Dates())
	})

	t.Run("contains", func(t *testing.T) {
		b := NewBlockedDates()
		b.now = fixedClock("2025-05-01")
		require.NoError(t, b.Add("2025-06-01"))

		assert.True(t, b.Contains("2025-06-01"))
		assert.False(t, b.Contains("2025-06-02"))
	})
}
