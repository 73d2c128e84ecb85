package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	// 2025-06-02 is a Monday.
	cases := []struct {
		date string
		want int
	}{
		{"2025-06-02", 0},
		{"2025-06-03", 1},
		{"2025-06-07", 5},
		{"2025-06-08", 6},
		{"2025-06-09", 0},
	}
	for _, tc := range cases {
		got, err := weekdayOf(tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.date)
	}

	_, err := weekdayOf("02-06-2025")
	assert.Error(t, err)
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, weekdayIndex["monday"])
	assert.Equal(t, 6, weekdayIndex["sunday"])
	_, ok := weekdayIndex["Monday"]
	assert.False(t, ok, "index keys are lowercase")
}

func TestAllowedTransitions(t *testing.T) {
	assert.Contains(t, allowedTransitions["scheduled"], "cancelled")
	assert.Contains(t, allowedTransitions["in-progress"], "completed")
	assert.Empty(t, allowedTransitions["completed"])
	assert.Empty(t, allowedTransitions["cancelled"])
}
