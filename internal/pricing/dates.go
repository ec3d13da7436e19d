package pricing

import (
	"cloud.google.com/go/civil"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a calendar date. field names the
// input in the returned ValidationError.
func ParseDate(field, s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, invalid(field, s, "expected a valid YYYY-MM-DD date")
	}
	return d, nil
}

// ExpandDates returns every calendar date from start through end inclusive.
// It returns an empty slice when start is after end.
func ExpandDates(start, end civil.Date) []civil.Date {
	if start.After(end) {
		return []civil.Date{}
	}
	days := make([]civil.Date, 0, end.DaysSince(start)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// ExpandRange is ExpandDates over YYYY-MM-DD strings.
func ExpandRange(start, end string) ([]string, error) {
	s, err := ParseDate("start_date", start)
	if err != nil {
		return nil, err
	}
	e, err := ParseDate("end_date", end)
	if err != nil {
		return nil, err
	}

	dates := ExpandDates(s, e)
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out, nil
}

// RentalWindow is a pickup/return pair with Start <= End.
type RentalWindow struct {
	Start civil.Date
	End   civil.Date
}

// NewRentalWindow parses and checks a pickup/return pair. Unlike ExpandRange,
// a return before pickup is an error here: a window always covers at least one day.
func NewRentalWindow(pickup, dropoff string) (RentalWindow, error) {
	s, err := ParseDate("pickup_date", pickup)
	if err != nil {
		return RentalWindow{}, err
	}
	e, err := ParseDate("return_date", dropoff)
	if err != nil {
		return RentalWindow{}, err
	}
	if e.Before(s) {
		return RentalWindow{}, invalid("return_date", dropoff, "must not be before pickup date")
	}
	return RentalWindow{Start: s, End: e}, nil
}

// Days returns the inclusive list of rental days as YYYY-MM-DD strings.
func (w RentalWindow) Days() []string {
	dates := ExpandDates(w.Start, w.End)
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}

// Len is the number of billable days in the window.
func (w RentalWindow) Len() int {
	return w.End.DaysSince(w.Start) + 1
}
