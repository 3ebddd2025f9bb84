package finboard

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return NewDate(d.y, d.m, d.d+days) }

// lastDay returns the last day of the given month.
func lastDay(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this one.
	return NewDate(year, month+1, 0).Day()
}

// AddMonths returns the date n calendar months later, clamping the day to the
// last day of the target month when the anchor day does not exist there.
// Jan 31 plus one month is Feb 28 (29 in leap years), never Mar 2 or 3.
func (d Date) AddMonths(n int) Date {
	norm := NewDate(d.y, d.m+time.Month(n), 1)
	day := d.d
	if last := lastDay(norm.Year(), norm.Month()); day > last {
		day = last
	}
	return NewDate(norm.Year(), norm.Month(), day)
}

// AddYears returns the date n calendar years later, clamping Feb 29 to Feb 28
// when the target year is not a leap year.
func (d Date) AddYears(n int) Date {
	day := d.d
	if last := lastDay(d.y+n, d.m); day > last {
		day = last
	}
	return NewDate(d.y+n, d.m, day)
}

// ParseDate parses a Date from an ISO-8601 string. It is lenient and accepts
// formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q, want format %q: %w", str, DateFormat, err)
	}
	*d = NewDate(on.Date())
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// MonthKey identifies a calendar month. It is the key type for monthly
// aggregation buckets, replacing ad hoc "year-month" string keys.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf returns the MonthKey of the month containing d.
func (d Date) MonthOf() MonthKey { return MonthKey{Year: d.y, Month: d.m} }

// String formats the key as "2006-01".
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// Next returns the key of the following calendar month.
func (k MonthKey) Next() MonthKey {
	d := NewDate(k.Year, k.Month+1, 1)
	return MonthKey{Year: d.Year(), Month: d.Month()}
}

// Before reports whether k is an earlier month than x.
func (k MonthKey) Before(x MonthKey) bool {
	return k.Year < x.Year || (k.Year == x.Year && k.Month < x.Month)
}

// Start returns the first day of the month.
func (k MonthKey) Start() Date { return NewDate(k.Year, k.Month, 1) }

// End returns the last day of the month.
func (k MonthKey) End() Date { return NewDate(k.Year, k.Month+1, 0) }

// Frequency is the recurrence rule of a recurring transaction definition.
type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Monthly
	Yearly
)

func (f Frequency) String() string {
	switch f {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown frequency %d", f))
	}
}

// ParseFrequency parses a frequency name.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown frequency %q", s)
	}
}

// Next returns the occurrence following d under the frequency rule. The
// result is always strictly after d: daily and weekly add a fixed number of
// days, monthly and yearly clamp the day to the end of short target months
// (see [Date.AddMonths]). The advance is anchored on d itself, so a Jan 31
// monthly definition clamped to Feb 28 continues on Mar 28.
func (f Frequency) Next(d Date) Date {
	switch f {
	case Daily:
		return d.Add(1)
	case Weekly:
		return d.Add(7)
	case Monthly:
		return d.AddMonths(1)
	case Yearly:
		return d.AddYears(1)
	default:
		panic(fmt.Sprintf("unknown frequency %d", f))
	}
}
