package schedule

import "strings"

// DayAvailability is the wire shape for one day of the availability
// payload: the lowercase weekday name plus its bookable slots.
type DayAvailability struct {
	Day   string     `json:"day"`
	Slots []TimeSlot `json:"slots"`
}

// BuildPayload flattens a weekly schedule into the shape the availability
// endpoint accepts. Days that are unavailable, or available with no slots,
// contribute nothing.
func BuildPayload(ws *WeeklySchedule) []DayAvailability {
	payload := make([]DayAvailability, 0, len(ws.Days))
	for _, day := range ws.Days {
		if !day.Available || len(day.Slots) == 0 {
			continue
		}
		slots := make([]TimeSlot, len(day.Slots))
		copy(slots, day.Slots)
		payload = append(payload, DayAvailability{
			Day:   strings.ToLower(day.Day),
			Slots: slots,
		})
	}
	return payload
}
