package models

import "time"

// dateLayouts are tried in order; the first that parses wins. The log store
// does not enforce a date format, so entries written by hand show up in a
// few shapes.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// LogDate is a calendar date from the log. A value that failed to parse is
// retained with Parsed=false so the raw row stays visible, but it never
// participates in date ordering or week bucketing.
type LogDate struct {
	Time   time.Time `json:"time"`
	Raw    string    `json:"raw"`
	Parsed bool      `json:"parsed"`
}

// ParseLogDate parses s leniently. It never fails: an unrecognized value
// yields the Unparsed sentinel carrying the raw text.
func ParseLogDate(s string) LogDate {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			// Normalize to midnight UTC; the log is day-granular.
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return LogDate{Time: day, Raw: s, Parsed: true}
		}
	}
	return LogDate{Raw: s}
}

// DateOf builds a parsed LogDate from a time, truncated to the day.
func DateOf(t time.Time) LogDate {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return LogDate{Time: day, Raw: day.Format("2006-01-02"), Parsed: true}
}

// Equal reports whether two dates are the same calendar day. Unparsed
// dates are never equal to anything, themselves included.
func (d LogDate) Equal(other LogDate) bool {
	return d.Parsed && other.Parsed && d.Time.Equal(other.Time)
}

// Before reports date ordering; unparsed dates order before everything so
// they can never win a max-date comparison.
func (d LogDate) Before(other LogDate) bool {
	if !d.Parsed {
		return true
	}
	if !other.Parsed {
		return false
	}
	return d.Time.Before(other.Time)
}

func (d LogDate) String() string {
	if !d.Parsed {
		return d.Raw
	}
	return d.Time.Format("2006-01-02")
}

// WeekStart returns the Monday of the calendar week containing the date
// (the date itself when it already is a Monday). Only valid for parsed
// dates.
func (d LogDate) WeekStart() time.Time {
	offset := (int(d.Time.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return d.Time.AddDate(0, 0, -offset)
}
