package schedule

import "fmt"

// TimeOption is one selectable time-of-day value. Value is the 24-hour
// "HH:MM" string stored on slots, Label is the 12-hour display string.
type TimeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TimeOptions returns the 48 selectable times, every 30 minutes from
// 00:00 to 23:30, in increasing order.
func TimeOptions() []TimeOption {
	options := make([]TimeOption, 0, 48)
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 30} {
			displayHour := hour % 12
			if displayHour == 0 {
				displayHour = 12
			}
			period := "AM"
			if hour >= 12 {
				period = "PM"
			}
			options = append(options, TimeOption{
				Value: fmt.Sprintf("%02d:%02d", hour, minute),
				Label: fmt.Sprintf("%d:%02d %s", displayHour, minute, period),
			})
		}
	}
	return options
}

var validTimes = func() map[string]struct{} {
	set := make(map[string]struct{}, 48)
	for _, opt := range TimeOptions() {
		set[opt.Value] = struct{}{}
	}
	return set
}()

// IsValidTime reports whether value is one of the 48 selectable times.
func IsValidTime(value string) bool {
	_, ok := validTimes[value]
	return ok
}
