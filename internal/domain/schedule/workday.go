package schedule

import "time"

// WorkingDay describes the bookable business hours. The schedule runs a
// single fixed day shape: 09:00-17:00, Monday through Friday.
type WorkingDay struct {
	startHour int
	endHour   int
}

func DefaultWorkingDay() WorkingDay {
	return WorkingDay{startHour: 9, endHour: 17}
}

func (w WorkingDay) StartHour() int {
	return w.startHour
}

func (w WorkingDay) EndHour() int {
	return w.endHour
}

// Capacity is the number of capacity-hours a day offers.
func (w WorkingDay) Capacity() int {
	return w.endHour - w.startHour
}

// HasEnded reports whether working hours are over for the day of now.
func (w WorkingDay) HasEnded(now time.Time) bool {
	return now.Hour() >= w.endHour
}

// ElapsedHours is how many whole capacity-hours have already passed on the
// day of now. Hours that passed cannot be booked anymore even when nothing
// was reserved for them.
func (w WorkingDay) ElapsedHours(now time.Time) int {
	elapsed := now.Hour() - w.startHour
	if elapsed < 0 {
		return 0
	}
	if elapsed > w.Capacity() {
		return w.Capacity()
	}
	return elapsed
}

// NextWorkingDay returns the first weekday strictly after the given day.
func (w WorkingDay) NextWorkingDay(after Day) Day {
	next := after.AddDays(1)
	for next.IsWeekend() {
		next = next.AddDays(1)
	}
	return next
}
