package schedule

import (
	"errors"
	"fmt"
)

var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

const (
	DefaultSlotStart = "09:00"
	DefaultSlotEnd   = "17:00"
)

var (
	ErrDayIndex      = errors.New("day index out of range")
	ErrUnknownField  = errors.New("field must be startTime or endTime")
	ErrInvalidTime   = errors.New("time is not one of the selectable values")
	ErrInvertedRange = errors.New("slot start time must be before end time")
)

// TimeSlot is a contiguous bookable range within a day. Both times are
// "HH:MM" strings drawn from TimeOptions.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DaySchedule is the availability for a single weekday. When Available is
// false Slots is ignored; it is cleared on toggle so stale slots never
// survive a disable.
type DaySchedule struct {
	Day       string     `json:"day"`
	Available bool       `json:"available"`
	Slots     []TimeSlot `json:"slots"`
}

// WeeklySchedule holds exactly one DaySchedule per weekday, Monday first.
type WeeklySchedule struct {
	Days [7]DaySchedule
}

// NewWeeklySchedule returns a schedule with every day unavailable and no slots.
func NewWeeklySchedule() *WeeklySchedule {
	var ws WeeklySchedule
	for i, name := range Weekdays {
		ws.Days[i] = DaySchedule{Day: name}
	}
	return &ws
}

func defaultSlot() TimeSlot {
	return TimeSlot{StartTime: DefaultSlotStart, EndTime: DefaultSlotEnd}
}

// ToggleAvailability flips a day on or off. Enabling a day seeds it with
// the single default slot; disabling clears the slot list entirely, so a
// double toggle does not restore prior slots.
func (ws *WeeklySchedule) ToggleAvailability(dayIndex int) error {
	if dayIndex < 0 || dayIndex >= len(ws.Days) {
		return fmt.Errorf("%w: %d", ErrDayIndex, dayIndex)
	}
	day := &ws.Days[dayIndex]
	day.Available = !day.Available
	if day.Available {
		day.Slots = []TimeSlot{defaultSlot()}
	} else {
		day.Slots = nil
	}
	return nil
}

// AddSlot appends the default slot to a day's list.
func (ws *WeeklySchedule) AddSlot(dayIndex int) error {
	if dayIndex < 0 || dayIndex >= len(ws.Days) {
		return fmt.Errorf("%w: %d", ErrDayIndex, dayIndex)
	}
	ws.Days[dayIndex].Slots = append(ws.Days[dayIndex].Slots, defaultSlot())
	return nil
}

// UpdateSlot sets one side of the indexed slot. The value must be one of
// the 48 selectable times, and the resulting slot must keep its start
// strictly before its end; inverted ranges are rejected and the slot is
// left unchanged.
func (ws *WeeklySchedule) UpdateSlot(dayIndex, slotIndex int, field, value string) error {
	if dayIndex < 0 || dayIndex >= len(ws.Days) {
		return fmt.Errorf("%w: %d", ErrDayIndex, dayIndex)
	}
	slots := ws.Days[dayIndex].Slots
	if slotIndex < 0 || slotIndex >= len(slots) {
		return fmt.Errorf("slot index out of range: %d", slotIndex)
	}
	if !IsValidTime(value) {
		return fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	updated := slots[slotIndex]
	switch field {
	case "startTime":
		updated.StartTime = value
	case "endTime":
		updated.EndTime = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	// "HH:MM" strings compare correctly as plain strings.
	if updated.StartTime >= updated.EndTime {
		return ErrInvertedRange
	}
	slots[slotIndex] = updated
	return nil
}

// RemoveSlot deletes the slot at slotIndex, shifting later slots down.
// An out-of-range slotIndex is a no-op.
func (ws *WeeklySchedule) RemoveSlot(dayIndex, slotIndex int) error {
	if dayIndex < 0 || dayIndex >= len(ws.Days) {
		return fmt.Errorf("%w: %d", ErrDayIndex, dayIndex)
	}
	slots := ws.Days[dayIndex].Slots
	if slotIndex < 0 || slotIndex >= len(slots) {
		return nil
	}
	ws.Days[dayIndex].Slots = append(slots[:slotIndex], slots[slotIndex+1:]...)
	return nil
}
