package schedule

import (
	"errors"
	"time"
)

var (
	ErrNonWorkday         = errors.New("date is not a working day")
	ErrPastDate           = errors.New("date is in the past")
	ErrDayFull            = errors.New("day is fully booked")
	ErrDuplicateRequester = errors.New("requester already has a reservation on this day")
	ErrSpanUnavailable    = errors.New("requested span exceeds remaining capacity")
)

type DayState string

const (
	StateOpen            DayState = "open"
	StatePartiallyBooked DayState = "partially_booked"
	StateFull            DayState = "full"
)

// DayLedger is the per-date record of reservations and the capacity rules
// over them. It carries no locking; the Store serializes access.
type DayLedger struct {
	day          Day
	workday      WorkingDay
	reservations []*Reservation
}

func NewDayLedger(day Day) *DayLedger {
	return &DayLedger{day: day, workday: DefaultWorkingDay()}
}

func (l *DayLedger) Day() Day {
	return l.day
}

func (l *DayLedger) WorkingDay() WorkingDay {
	return l.workday
}

// Reservations returns the bookings in insertion order.
func (l *DayLedger) Reservations() []*Reservation {
	out := make([]*Reservation, len(l.reservations))
	copy(out, l.reservations)
	return out
}

func (l *DayLedger) Len() int {
	return len(l.reservations)
}

// BookedHours sums the capacity claimed by reservations alone, without the
// wall-clock fold. A roll-over reservation claims the whole day.
func (l *DayLedger) BookedHours() int {
	capacity := l.workday.Capacity()
	booked := 0
	for _, r := range l.reservations {
		if r.span.RollsOver() {
			return capacity
		}
		booked += r.span.Hours()
	}
	if booked > capacity {
		booked = capacity
	}
	return booked
}

// ConsumedHours is the capacity no longer available on this day, in
// [0, capacity]. For the current day, hours already elapsed since the start
// of working hours count as consumed even when nothing was booked for them;
// bookings fill the day from its start, so the two overlap rather than add.
func (l *DayLedger) ConsumedHours(now time.Time) int {
	consumed := l.BookedHours()

	if l.day.Equal(DayOf(now)) {
		if elapsed := l.workday.ElapsedHours(now); elapsed > consumed {
			consumed = elapsed
		}
	}

	if consumed < 0 {
		return 0
	}
	if capacity := l.workday.Capacity(); consumed > capacity {
		return capacity
	}
	return consumed
}

func (l *DayLedger) RemainingHours(now time.Time) int {
	return l.workday.Capacity() - l.ConsumedHours(now)
}

func (l *DayLedger) IsFull(now time.Time) bool {
	return l.ConsumedHours(now) >= l.workday.Capacity()
}

// AvailableOptions lists every span that may still be booked: hour counts
// ascending up to the remaining capacity, then the NextWorkday sentinel.
// A full day has no options. Never persisted; always derived fresh.
func (l *DayLedger) AvailableOptions(now time.Time) []Span {
	remaining := l.RemainingHours(now)
	if remaining <= 0 {
		return nil
	}

	options := make([]Span, 0, remaining+1)
	for hours := 1; hours <= remaining; hours++ {
		span, err := HourSpan(hours)
		if err != nil {
			break
		}
		options = append(options, span)
	}
	return append(options, NextWorkdaySpan())
}

func (l *DayLedger) State(now time.Time) DayState {
	switch consumed := l.ConsumedHours(now); {
	case consumed >= l.workday.Capacity():
		return StateFull
	case consumed > 0:
		return StatePartiallyBooked
	default:
		return StateOpen
	}
}

// IsSelectable gates calendar-tile selection: weekends never, past days
// never, today only until working hours end, full days never.
func (l *DayLedger) IsSelectable(now time.Time) bool {
	if l.day.IsWeekend() {
		return false
	}
	today := DayOf(now)
	if l.day.Before(today) {
		return false
	}
	if l.day.Equal(today) && l.workday.HasEnded(now) {
		return false
	}
	return !l.IsFull(now)
}

// Validate checks a candidate reservation against the ledger without
// mutating it. The first applicable violation is returned.
func (l *DayLedger) Validate(res *Reservation, now time.Time) error {
	if l.day.IsWeekend() {
		return ErrNonWorkday
	}

	today := DayOf(now)
	if l.day.Before(today) {
		return ErrPastDate
	}
	if l.day.Equal(today) && l.workday.HasEnded(now) {
		return ErrPastDate
	}

	if l.IsFull(now) {
		return ErrDayFull
	}

	for _, existing := range l.reservations {
		if existing.requester == res.requester {
			return ErrDuplicateRequester
		}
	}

	if !res.span.RollsOver() && res.span.Hours() > l.RemainingHours(now) {
		return ErrSpanUnavailable
	}

	return nil
}

// Place validates and appends. This is the only mutation; once a day goes
// full it never leaves that state.
func (l *DayLedger) Place(res *Reservation, now time.Time) error {
	if err := l.Validate(res, now); err != nil {
		return err
	}
	l.reservations = append(l.reservations, res)
	return nil
}
