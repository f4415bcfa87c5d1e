package week

import (
	"fmt"
	"strings"
	"time"
)

// Window is a calendar week. Both bounds are inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

// Of returns the week containing t, starting on firstDay at midnight in t's location.
func Of(t time.Time, firstDay time.Weekday) Window {
	offset := (int(t.Weekday()) - int(firstDay) + 7) % 7
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start := midnight.AddDate(0, 0, -offset)
	next := start.AddDate(0, 0, 7)

	return Window{
		Start: start,
		End:   next.Add(-time.Nanosecond),
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Previous returns the week immediately before w.
func (w Window) Previous() Window {
	start := w.Start.AddDate(0, 0, -7)
	return Window{
		Start: start,
		End:   w.Start.Add(-time.Nanosecond),
	}
}

// Days returns the midnight of each day in the window, in order.
func (w Window) Days() []time.Time {
	days := make([]time.Time, 0, 7)
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// UTC returns the same window with both bounds converted to UTC, as stored in the database.
func (w Window) UTC() Window {
	return Window{Start: w.Start.UTC(), End: w.End.UTC()}
}

// ParseWeekday accepts full English day names or their three-letter prefixes.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			full := strings.ToLower(d.String())
			if name == full || name == full[:3] {
				return d, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday: %q", s)
}
