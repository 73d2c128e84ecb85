package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

var ErrSubmitInFlight = errors.New("an availability submission is already in flight")

// SubmissionError wraps whatever went wrong during a submit. Callers are
// expected to surface a generic failure message, not the detail.
type SubmissionError struct {
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("availability submission failed: %v", e.Err)
	}
	return fmt.Sprintf("availability submission failed: status %d", e.StatusCode)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Submitter sends a weekly schedule to the availability endpoint. The
// bearer token is injected at construction rather than read from any
// ambient store. At most one submission runs at a time; a second Submit
// while one is outstanding returns ErrSubmitInFlight.
type Submitter struct {
	Endpoint string
	Token    string
	Client   *http.Client

	mu     sync.Mutex
	saving bool
}

func NewSubmitter(endpoint, token string) *Submitter {
	return &Submitter{
		Endpoint: endpoint,
		Token:    token,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Saving reports whether a submission is currently outstanding.
func (s *Submitter) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// Submit serializes the schedule and issues a single authenticated PUT.
// Any 2xx response is success; everything else, including transport
// errors, comes back as a *SubmissionError. No retries.
func (s *Submitter) Submit(ctx context.Context, ws *WeeklySchedule) error {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}
	s.saving = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	body, err := json.Marshal(map[string]any{"availability": BuildPayload(ws)})
	if err != nil {
		return &SubmissionError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return &SubmissionError{Err: err}
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Token)

	resp, err := s.Client.Do(req)
	if err != nil {
		return &SubmissionError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Printf("Availability submit error: Status %d, Body: %s", resp.StatusCode, string(bodyBytes))
		return &SubmissionError{StatusCode: resp.StatusCode}
	}
	return nil
}
