package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day. It carries no clock or zone information and
// marshals as "2006-01-02" everywhere (JSON, SQL, logs).
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "2006-01-02". Anything else is an error, including
// full timestamps.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }
func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("date must be a %q string", dateLayout)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan accepts DATE columns both as time.Time (parseTime=true) and as
// raw bytes.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d Date) Value() (driver.Value, error) { return d.Format(dateLayout), nil }

// DateRange is a closed interval of calendar days. Start == End is a
// one-day range.
type DateRange struct {
	Start Date `json:"start_date"`
	End   Date `json:"end_date"`
}

func (r DateRange) Valid() bool { return !r.End.Before(r.Start) }

// Overlaps reports whether the two ranges share at least one day.
// Closed intervals, so touching endpoints count as overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.Start.After(o.End) && !o.Start.After(r.End)
}

// NamedRange ties a range to the price tier it belongs to, for overlap
// reporting.
type NamedRange struct {
	Name string `json:"name"`
	DateRange
}

// FindFirstOverlap checks every pair of ranges and returns the first
// overlapping pair in input order.
func FindFirstOverlap(ranges []NamedRange) (first, second NamedRange, found bool) {
	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].Overlaps(ranges[j].DateRange) {
				return ranges[i], ranges[j], true
			}
		}
	}
	return NamedRange{}, NamedRange{}, false
}
