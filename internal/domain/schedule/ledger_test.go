//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"github.com/erfanansari/reservation-app/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday with working hours not started yet, so the wall-clock fold
// stays out of the way unless a test moves the clock.
var (
	testDay = schedule.NewDay(2022, time.November, 9)
	testNow = time.Date(2022, time.November, 9, 8, 0, 0, 0, time.UTC)
)

func mustHourSpan(t *testing.T, hours int) schedule.Span {
	t.Helper()
	span, err := schedule.HourSpan(hours)
	require.NoError(t, err)
	return span
}

func mustPlace(t *testing.T, l *schedule.DayLedger, name string, span schedule.Span, now time.Time) {
	t.Helper()
	res, err := schedule.NewReservation(name, span, now)
	require.NoError(t, err)
	require.NoError(t, l.Place(res, now))
}

func placeErr(t *testing.T, l *schedule.DayLedger, name string, span schedule.Span, now time.Time) error {
	t.Helper()
	res, err := schedule.NewReservation(name, span, now)
	require.NoError(t, err)
	return l.Place(res, now)
}

func optionStrings(spans []schedule.Span) []string {
	out := make([]string, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.String())
	}
	return out
}

func TestDayLedgerBookingScenario(t *testing.T) {
	ledger := schedule.NewDayLedger(testDay)

	assert.Equal(t, 0, ledger.ConsumedHours(testNow))
	assert.Equal(t, schedule.StateOpen, ledger.State(testNow))

	mustPlace(t, ledger, "John Doe", mustHourSpan(t, 1), testNow)
	assert.Equal(t, 1, ledger.ConsumedHours(testNow))

	mustPlace(t, ledger, "Jane Doe", mustHourSpan(t, 2), testNow)
	assert.Equal(t, 3, ledger.ConsumedHours(testNow))
	assert.Equal(t, schedule.StatePartiallyBooked, ledger.State(testNow))

	err := placeErr(t, ledger, "John Doe", mustHourSpan(t, 1), testNow)
	assert.ErrorIs(t, err, schedule.ErrDuplicateRequester)

	// A duplicate name is rejected regardless of span.
	err = placeErr(t, ledger, "Jane Doe", schedule.NextWorkdaySpan(), testNow)
	assert.ErrorIs(t, err, schedule.ErrDuplicateRequester)

	assert.Equal(t, 2, ledger.Len())
}

func TestDayLedgerCapacityBoundary(t *testing.T) {
	ledger := schedule.NewDayLedger(testDay)
	mustPlace(t, ledger, "early bird", mustHourSpan(t, 7), testNow)
	require.Equal(t, 7, ledger.ConsumedHours(testNow))

	t.Run("span exceeding remainder is rejected, not clamped", func(t *testing.T) {
		err := placeErr(t, ledger, "X", mustHourSpan(t, 2), testNow)
		assert.ErrorIs(t, err, schedule.ErrSpanUnavailable)
		assert.Equal(t, 7, ledger.ConsumedHours(testNow))
	})

	t.Run("exact remainder fills the day", func(t *testing.T) {
		mustPlace(t, ledger, "X", mustHourSpan(t, 1), testNow)
		assert.Equal(t, 8, ledger.ConsumedHours(testNow))
		assert.True(t, ledger.IsFull(testNow))
		assert.Equal(t, schedule.StateFull, ledger.State(testNow))
	})

	t.Run("full is terminal", func(t *testing.T) {
		err := placeErr(t, ledger, "latecomer", mustHourSpan(t, 1), testNow)
		assert.ErrorIs(t, err, schedule.ErrDayFull)
	})
}

func TestDayLedgerNextWorkday(t *testing.T) {
	ledger := schedule.NewDayLedger(testDay)

	mustPlace(t, ledger, "X", schedule.NextWorkdaySpan(), testNow)

	assert.True(t, ledger.IsFull(testNow))
	assert.Equal(t, 8, ledger.ConsumedHours(testNow))
	assert.Empty(t, ledger.AvailableOptions(testNow))

	err := placeErr(t, ledger, "Y", mustHourSpan(t, 1), testNow)
	assert.ErrorIs(t, err, schedule.ErrDayFull)

	err = placeErr(t, ledger, "Z", schedule.NextWorkdaySpan(), testNow)
	assert.ErrorIs(t, err, schedule.ErrDayFull)
}

func TestDayLedgerAvailableOptions(t *testing.T) {
	t.Run("empty day offers every duration", func(t *testing.T) {
		ledger := schedule.NewDayLedger(testDay)
		want := []string{"1", "2", "3", "4", "5", "6", "7", "8", "next workday"}
		if diff := cmp.Diff(want, optionStrings(ledger.AvailableOptions(testNow))); diff != "" {
			t.Errorf("options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("options narrow to the remainder", func(t *testing.T) {
		ledger := schedule.NewDayLedger(testDay)
		mustPlace(t, ledger, "a", mustHourSpan(t, 3), testNow)

		want := []string{"1", "2", "3", "4", "5", "next workday"}
		if diff := cmp.Diff(want, optionStrings(ledger.AvailableOptions(testNow))); diff != "" {
			t.Errorf("options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("full day offers nothing", func(t *testing.T) {
		ledger := schedule.NewDayLedger(testDay)
		mustPlace(t, ledger, "a", mustHourSpan(t, 8), testNow)
		assert.Empty(t, ledger.AvailableOptions(testNow))
	})
}

func TestDayLedgerElapsedHoursFold(t *testing.T) {
	ledger := schedule.NewDayLedger(testDay)

	t.Run("before working hours nothing has elapsed", func(t *testing.T) {
		at := time.Date(2022, time.November, 9, 7, 30, 0, 0, time.UTC)
		assert.Equal(t, 0, ledger.ConsumedHours(at))
	})

	t.Run("elapsed hours consume unbooked capacity", func(t *testing.T) {
		at := time.Date(2022, time.November, 9, 13, 0, 0, 0, time.UTC)
		assert.Equal(t, 4, ledger.ConsumedHours(at))
		assert.Equal(t, []string{"1", "2", "3", "4", "next workday"}, optionStrings(ledger.AvailableOptions(at)))
	})

	t.Run("bookings and elapsed time overlap rather than add", func(t *testing.T) {
		booked := schedule.NewDayLedger(testDay)
		mustPlace(t, booked, "a", mustHourSpan(t, 6), testNow)

		at := time.Date(2022, time.November, 9, 13, 0, 0, 0, time.UTC)
		assert.Equal(t, 6, booked.ConsumedHours(at))
	})

	t.Run("after working hours the day is spent", func(t *testing.T) {
		at := time.Date(2022, time.November, 9, 21, 0, 0, 0, time.UTC)
		assert.Equal(t, 8, ledger.ConsumedHours(at))
		assert.True(t, ledger.IsFull(at))
	})

	t.Run("other days never fold wall-clock time", func(t *testing.T) {
		dayBefore := time.Date(2022, time.November, 8, 13, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, ledger.ConsumedHours(dayBefore))
	})
}

func TestDayLedgerValidate(t *testing.T) {
	cases := []struct {
		name  string
		day   schedule.Day
		now   time.Time
		errIs error
	}{
		{
			name:  "saturday",
			day:   schedule.NewDay(2022, time.November, 12),
			now:   testNow,
			errIs: schedule.ErrNonWorkday,
		},
		{
			name:  "sunday",
			day:   schedule.NewDay(2022, time.November, 13),
			now:   testNow,
			errIs: schedule.ErrNonWorkday,
		},
		{
			name:  "yesterday",
			day:   schedule.NewDay(2022, time.November, 8),
			now:   testNow,
			errIs: schedule.ErrPastDate,
		},
		{
			name:  "today after working hours",
			day:   testDay,
			now:   time.Date(2022, time.November, 9, 17, 0, 0, 0, time.UTC),
			errIs: schedule.ErrPastDate,
		},
		{
			name: "today within working hours",
			day:  testDay,
			now:  time.Date(2022, time.November, 9, 16, 59, 0, 0, time.UTC),
		},
		{
			name: "future weekday",
			day:  schedule.NewDay(2022, time.November, 10),
			now:  testNow,
		},
		{
			// A weekend in the past surfaces the weekend violation first.
			name:  "past weekend",
			day:   schedule.NewDay(2022, time.November, 5),
			now:   testNow,
			errIs: schedule.ErrNonWorkday,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := schedule.NewDayLedger(tc.day)
			res, err := schedule.NewReservation("someone", mustHourSpan(t, 1), tc.now)
			require.NoError(t, err)

			err = ledger.Validate(res, tc.now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDayLedgerIsSelectable(t *testing.T) {
	t.Run("future weekday", func(t *testing.T) {
		ledger := schedule.NewDayLedger(schedule.NewDay(2022, time.November, 10))
		assert.True(t, ledger.IsSelectable(testNow))
	})

	t.Run("weekends are never selectable", func(t *testing.T) {
		assert.False(t, schedule.NewDayLedger(schedule.NewDay(2022, time.November, 12)).IsSelectable(testNow))
		assert.False(t, schedule.NewDayLedger(schedule.NewDay(2022, time.November, 13)).IsSelectable(testNow))
	})

	t.Run("past days are never selectable", func(t *testing.T) {
		assert.False(t, schedule.NewDayLedger(schedule.NewDay(2022, time.November, 8)).IsSelectable(testNow))
	})

	t.Run("today flips at the end of working hours", func(t *testing.T) {
		ledger := schedule.NewDayLedger(testDay)
		beforeClose := time.Date(2022, time.November, 9, 16, 0, 0, 0, time.UTC)
		atClose := time.Date(2022, time.November, 9, 17, 0, 0, 0, time.UTC)
		assert.True(t, ledger.IsSelectable(beforeClose))
		assert.False(t, ledger.IsSelectable(atClose))
	})

	t.Run("full days are excluded", func(t *testing.T) {
		ledger := schedule.NewDayLedger(schedule.NewDay(2022, time.November, 10))
		mustPlace(t, ledger, "a", schedule.NextWorkdaySpan(), testNow)
		assert.False(t, ledger.IsSelectable(testNow))
	})
}
