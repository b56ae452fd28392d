package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSpan = errors.New("invalid duration span")

// NextWorkdayLabel is the wire form of the roll-over sentinel, kept
// identical to what callers persist and submit.
const NextWorkdayLabel = "next workday"

// Span is a reservation duration: either a whole number of capacity-hours
// within one day, or the NextWorkday sentinel that claims all remaining
// capacity and rolls the requester to the following working day.
type Span struct {
	hours     int
	rollsOver bool
}

func HourSpan(hours int) (Span, error) {
	if hours < 1 || hours > DefaultWorkingDay().Capacity() {
		return Span{}, ErrInvalidSpan
	}
	return Span{hours: hours}, nil
}

func NextWorkdaySpan() Span {
	return Span{rollsOver: true}
}

// ParseSpan accepts the wire forms "1".."8" and "next workday".
func ParseSpan(raw string) (Span, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == NextWorkdayLabel {
		return NextWorkdaySpan(), nil
	}
	hours, err := strconv.Atoi(trimmed)
	if err != nil {
		return Span{}, ErrInvalidSpan
	}
	return HourSpan(hours)
}

func (s Span) RollsOver() bool {
	return s.rollsOver
}

// Hours is the hour count of an hour-valued span, zero for the sentinel.
func (s Span) Hours() int {
	return s.hours
}

// ConsumedHours is the capacity this span takes out of a day: the sentinel
// always consumes everything.
func (s Span) ConsumedHours(capacity int) int {
	if s.rollsOver {
		return capacity
	}
	return s.hours
}

func (s Span) IsZero() bool {
	return !s.rollsOver && s.hours == 0
}

func (s Span) String() string {
	if s.rollsOver {
		return NextWorkdayLabel
	}
	return strconv.Itoa(s.hours)
}

// Text is the human-readable rendering shown in schedule listings.
func (s Span) Text() string {
	if s.rollsOver {
		return NextWorkdayLabel
	}
	if s.hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", s.hours)
}

func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Span) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidSpan
	}
	parsed, err := ParseSpan(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
