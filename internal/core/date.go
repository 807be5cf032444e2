package core

import (
	"fmt"
	"strings"
	"time"
)

// Date wraps time.Time so transaction dates marshal to the wire's ISO-8601
// timestamp strings and tolerate the formats the service emits.
type Date struct {
	time.Time
}

// Wire layouts accepted on unmarshal, tried in order. RFC3339 is what this
// client sends; the bare datetime and date forms show up in stored rows.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date at midnight UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a form date field (YYYY-MM-DD) into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t.UTC()}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Format(time.RFC3339) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unsupported date value %q", s)
}

// FormValue renders the date the way an <input type="date"> expects it.
func (d Date) FormValue() string {
	return d.Format("2006-01-02")
}

// Short renders the localized short form shown in tables (M/D/YYYY).
func (d Date) Short() string {
	return fmt.Sprintf("%d/%d/%d", int(d.Month()), d.Day(), d.Year())
}
