package schedule

import (
	"time"

	"github.com/google/uuid"
)

// SeedDemoData loads the sample schedule used for demos and tests: a
// partially booked day and a nearly full one.
func SeedDemoData(store *Store) {
	oneHour, _ := HourSpan(1)
	twoHours, _ := HourSpan(2)
	sevenHours, _ := HourSpan(7)

	nov9 := NewDay(2022, time.November, 9)
	store.Restore(nov9, []*Reservation{
		ReconstructReservation(uuid.New(), "John Doe", oneHour, time.Time{}),
		ReconstructReservation(uuid.New(), "Jane Doe", twoHours, time.Time{}),
	})

	nov24 := NewDay(2022, time.November, 24)
	store.Restore(nov24, []*Reservation{
		ReconstructReservation(uuid.New(), "John Doe", sevenHours, time.Time{}),
	})
}
