package stay

import (
	"fmt"
	"time"
)

// ISODate is the only wire format for calendar dates.
const ISODate = "2006-01-02"

// Date is a calendar date with no time-of-day and no timezone. Arithmetic
// operates on calendar fields, so shifting across a DST boundary can never
// drift by an hour the way epoch-based math does.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	// normalize through time.Date so e.g. Feb 30 folds over
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf strips the time-of-day from t using t's own location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar date in local time.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) String() string {
	return d.toTime().Format(ISODate)
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// toTime pins the date at midnight UTC, which keeps day arithmetic exact.
func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Time returns the date at midnight in the given location, for storage
// layers that persist DATE columns via time.Time.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays shifts the date by n calendar days. n may be negative.
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) Before(o Date) bool {
	return d.toTime().Before(o.toTime())
}

func (d Date) After(o Date) bool {
	return d.toTime().After(o.toTime())
}

func (d Date) Equal(o Date) bool {
	return d == o
}

// MarshalJSON emits the date as an ISO YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysBetween returns the whole number of nights between a and b.
// It fails with ErrInvalidRange when b is not strictly after a.
func DaysBetween(a, b Date) (int, error) {
	if !b.After(a) {
		return 0, ErrInvalidRange
	}
	return int(b.toTime().Sub(a.toTime()).Hours() / 24), nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. A checkout on day X never conflicts with a
// check-in on day X.
func Overlaps(aStart, aEnd, bStart, bEnd Date) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
