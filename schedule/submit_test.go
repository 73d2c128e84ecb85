package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondaySchedule(t *testing.T) *WeeklySchedule {
	t.Helper()
	ws := NewWeeklySchedule()
	require.NoError(t, ws.ToggleAvailability(0))
	require.NoError(t, ws.UpdateSlot(0, 0, "startTime", "08:00"))
	require.NoError(t, ws.UpdateSlot(0, 0, "endTime", "12:00"))
	return ws
}

func TestSubmit(t *testing.T) {
	t.Run("sends an authenticated PUT with the filtered payload", func(t *testing.T) {
		var gotMethod, gotAuth string
		var gotBody struct {
			Availability []DayAvailability `json:"availability"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		s := NewSubmitter(server.URL, "token-123")
		require.NoError(t, s.Submit(context.Background(), mondaySchedule(t)))

		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "Bearer token-123", gotAuth)
		assert.Equal(t, []DayAvailability{
			{Day: "monday", Slots: []TimeSlot{{StartTime: "08:00", EndTime: "12:00"}}},
		}, gotBody.Availability)
	})

	t.Run("server error surfaces as SubmissionError and clears the saving flag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		ws := mondaySchedule(t)
		s := NewSubmitter(server.URL, "token-123")

		err := s.Submit(context.Background(), ws)
		var subErr *SubmissionError
		require.ErrorAs(t, err, &subErr)
		assert.Equal(t, http.StatusInternalServerError, subErr.StatusCode)

		// schedule stays editable with its prior values
		assert.Equal(t, "08:00", ws.Days[0].Slots[0].StartTime)
		assert.False(t, s.Saving())
	})

	t.Run("transport error surfaces as SubmissionError", func(t *testing.T) {
		s := NewSubmitter("http://127.0.0.1:1", "token-123")

		err := s.Submit(context.Background(), mondaySchedule(t))
		var subErr *SubmissionError
		require.ErrorAs(t, err, &subErr)
		assert.False(t, s.Saving())
	})

	t.Run("a second submit while saving is rejected", func(t *testing.T) {
		inFlight := make(chan struct{})
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(inFlight)
			<-release
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		s := NewSubmitter(server.URL, "token-123")
		ws := mondaySchedule(t)
		first := make(chan error, 1)
		go func() { first <- s.Submit(context.Background(), ws) }()

		<-inFlight
		assert.ErrorIs(t, s.Submit(context.Background(), mondaySchedule(t)), ErrSubmitInFlight)

		close(release)
		require.NoError(t, <-first)
		assert.False(t, s.Saving())
	})
}
