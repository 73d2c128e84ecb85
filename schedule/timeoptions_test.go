package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOptions(t *testing.T) {
	options := TimeOptions()

	require.Len(t, options, 48)

	t.Run("values cover every half hour in order", func(t *testing.T) {
		i := 0
		for hour := 0; hour < 24; hour++ {
			for _, minute := range []int{0, 30} {
				assert.Equal(t, fmt.Sprintf("%02d:%02d", hour, minute), options[i].Value)
				i++
			}
		}
	})

	t.Run("values are strictly increasing", func(t *testing.T) {
		for i := 1; i < len(options); i++ {
			assert.Less(t, options[i-1].Value, options[i].Value)
		}
	})

	t.Run("labels use 12 hour clock", func(t *testing.T) {
		assert.Equal(t, "12:00 AM", options[0].Label)
		assert.Equal(t, "12:30 AM", options[1].Label)
		assert.Equal(t, "1:00 AM", options[2].Label)
		assert.Equal(t, "11:30 AM", options[23].Label)
		assert.Equal(t, "12:00 PM", options[24].Label)
		assert.Equal(t, "1:00 PM", options[26].Label)
		assert.Equal(t, "11:30 PM", options[47].Label)
	})
}

func TestIsValidTime(t *testing.T) {
	assert.True(t, IsValidTime("00:00"))
	assert.True(t, IsValidTime("09:30"))
	assert.True(t, IsValidTime("23:30"))

	assert.False(t, IsValidTime("24:00"))
	assert.False(t, IsValidTime("09:15"))
	assert.False(t, IsValidTime("9:00"))
	assert.False(t, IsValidTime(""))
	assert.False(t, IsValidTime("noon"))
}
