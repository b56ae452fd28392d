package schedule

import (
	"errors"
	"time"
)

var ErrInvalidDay = errors.New("invalid calendar day")

const dayLayout = "2006-01-02"

// Day is a calendar date with no time component. All ledger state is keyed
// by Day, so construction always normalizes to midnight UTC.
type Day struct {
	t time.Time
}

func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf truncates an instant to its calendar date.
func DayOf(t time.Time) Day {
	year, month, day := t.Date()
	return NewDay(year, month, day)
}

func ParseDay(raw string) (Day, error) {
	t, err := time.Parse(dayLayout, raw)
	if err != nil {
		return Day{}, ErrInvalidDay
	}
	return DayOf(t), nil
}

func (d Day) String() string {
	return d.t.Format(dayLayout)
}

func (d Day) Weekday() time.Weekday {
	return d.t.Weekday()
}

func (d Day) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

func (d Day) AddDays(n int) Day {
	return DayOf(d.t.AddDate(0, 0, n))
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}
