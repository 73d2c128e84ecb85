package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrBadDate        = errors.New("date must be an ISO YYYY-MM-DD string")
	ErrPastDate       = errors.New("date must be today or later")
	ErrAlreadyBlocked = errors.New("date is already blocked")
)

// BlockedDates is a doctor's set of calendar dates excluded from the weekly
// pattern. Dates are kept in insertion order and deduplicated on add.
type BlockedDates struct {
	dates []string
	now   func() time.Time
}

func NewBlockedDates() *BlockedDates {
	return &BlockedDates{now: time.Now}
}

// Add records a date as blocked. The date must parse as YYYY-MM-DD and be
// today or later; adding a date that is already present is an error rather
// than a duplicate entry.
func (b *BlockedDates) Add(date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadDate, date)
	}
	today := b.now().Format("2006-01-02")
	if parsed.Format("2006-01-02") < today {
		return fmt.Errorf("%w: %q", ErrPastDate, date)
	}
	for _, existing := range b.dates {
		if existing == date {
			return fmt.Errorf("%w: %q", ErrAlreadyBlocked, date)
		}
	}
	b.dates = append(b.dates, date)
	return nil
}

// Remove drops every occurrence of date. Removing an absent date is a no-op.
func (b *BlockedDates) Remove(date string) {
	kept := b.dates[:0]
	for _, existing := range b.dates {
		if existing != date {
			kept = append(kept, existing)
		}
	}
	b.dates = kept
}

// Dates returns the blocked dates in insertion order.
func (b *BlockedDates) Dates() []string {
	out := make([]string, len(b.dates))
	copy(out, b.dates)
	return out
}

// Contains reports whether date is blocked.
func (b *BlockedDates) Contains(date string) bool {
	for _, existing := range b.dates {
		if existing == date {
			return true
		}
	}
	return false
}
