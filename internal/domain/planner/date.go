package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/edulens/edulens-api/internal/domain"
)

// Tokyo is the fixed Asia/Tokyo zone (UTC+9, no daylight saving) every
// instant is converted to before taking its calendar date.
var Tokyo = time.FixedZone("Asia/Tokyo", 9*60*60)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a civil calendar date with no time-of-day or zone. Comparing two
// Dates is equivalent to comparing both instants floored to midnight.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for year, month and day. Out-of-range values are
// normalized the way time.Date does (February 30 becomes March 1 or 2).
func NewDate(year int, month time.Month, dayOfMonth int) Date {
	return dateFromTime(time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Asia/Tokyo calendar date of t.
func DateOf(t time.Time) Date {
	return DateIn(t, Tokyo)
}

// DateIn returns the calendar date of t as observed in loc.
func DateIn(t time.Time, loc *time.Location) Date {
	return dateFromTime(t.In(loc))
}

func dateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string. Full RFC 3339 timestamps are also
// accepted and reduced to their Asia/Tokyo calendar date, since stored
// deadlines sometimes arrive as timestamps.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return dateFromTime(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
}

// MustParseDate is like ParseDate but panics on error. Intended for tables
// and tests.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Midnight returns the date at 00:00 UTC. Differences between two Midnight
// values are always whole multiples of 24h.
func (d Date) Midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (before, when n is negative).
func (d Date) AddDays(n int) Date {
	return dateFromTime(d.Midnight().AddDate(0, 0, n))
}

// Sub returns the number of days from o to d. It works on Unix seconds
// rather than time.Duration, which overflows past roughly 292 years.
func (d Date) Sub(o Date) int {
	return int((d.Midnight().Unix() - o.Midnight().Unix()) / secondsPerDay)
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	return d.Midnight().Before(o.Midnight())
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool {
	return o.Before(d)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Midnight().Weekday()
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Midnight().Format(DateLayout)
}

// FormatJP formats d the way workbook listings show it, e.g. "3月14日".
func (d Date) FormatJP() string {
	return fmt.Sprintf("%d月%d日", int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
