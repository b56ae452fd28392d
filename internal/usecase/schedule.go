package usecase

import (
	"context"
	"errors"

	"github.com/erfanansari/reservation-app/internal/domain/schedule"
	"github.com/erfanansari/reservation-app/internal/pkg/clock"
	"github.com/erfanansari/reservation-app/internal/pkg/errs"
)

// ErrSnapshotFailed marks persistence failures so callers can tell an
// infrastructure problem apart from a validation rejection.
var ErrSnapshotFailed = errors.New("snapshot persistence failed")

// AcceptResult carries an accepted reservation together with the outcome of
// the persistence attempt. PersistErr being non-nil does not undo the
// acceptance; the in-memory store stays the source of truth.
type AcceptResult struct {
	Reservation *schedule.Reservation
	PersistErr  error
}

// DayView bundles everything the presentation layer needs for one selected
// date.
type DayView struct {
	Day            schedule.Day
	ConsumedHours  int
	RemainingHours int
	State          schedule.DayState
	Selectable     bool
	Occupancy      int
	Options        []schedule.Span
}

type ScheduleUseCase interface {
	GetOptions(date schedule.Day) []schedule.Span
	Accept(ctx context.Context, date schedule.Day, requester string, span schedule.Span) (*AcceptResult, error)
	IsSelectable(date schedule.Day) bool
	OccupancyIndicator(date schedule.Day) int
	ListReservations(date schedule.Day) []*schedule.Reservation
	GetDay(date schedule.Day) *DayView
}

type scheduleUseCaseImpl struct {
	store     *schedule.Store
	snapshots SnapshotRepository
	clock     clock.Clock
}

func NewScheduleUseCase(store *schedule.Store, snapshots SnapshotRepository, clk clock.Clock) ScheduleUseCase {
	return &scheduleUseCaseImpl{
		store:     store,
		snapshots: snapshots,
		clock:     clk,
	}
}

func (u *scheduleUseCaseImpl) GetOptions(date schedule.Day) []schedule.Span {
	return u.store.AvailableOptions(date, u.clock.Now())
}

// Accept re-validates and applies a reservation request atomically, then
// persists the day's entries. A persistence failure is reported in the
// result, not as a rejection.
func (u *scheduleUseCaseImpl) Accept(ctx context.Context, date schedule.Day, requester string, span schedule.Span) (*AcceptResult, error) {
	res, err := u.store.Place(date, requester, span, u.clock.Now())
	if err != nil {
		return nil, err
	}

	result := &AcceptResult{Reservation: res}
	if u.snapshots != nil {
		entries := entriesFromReservations(u.store.Reservations(date))
		if saveErr := u.snapshots.Save(ctx, date.String(), entries); saveErr != nil {
			result.PersistErr = errs.Mark(saveErr, ErrSnapshotFailed)
		}
	}
	return result, nil
}

func (u *scheduleUseCaseImpl) IsSelectable(date schedule.Day) bool {
	return u.store.IsSelectable(date, u.clock.Now())
}

func (u *scheduleUseCaseImpl) OccupancyIndicator(date schedule.Day) int {
	return u.store.Count(date)
}

func (u *scheduleUseCaseImpl) ListReservations(date schedule.Day) []*schedule.Reservation {
	return u.store.Reservations(date)
}

func (u *scheduleUseCaseImpl) GetDay(date schedule.Day) *DayView {
	now := u.clock.Now()
	consumed := u.store.ConsumedHours(date, now)

	return &DayView{
		Day:            date,
		ConsumedHours:  consumed,
		RemainingHours: schedule.DefaultWorkingDay().Capacity() - consumed,
		State:          u.store.State(date, now),
		Selectable:     u.store.IsSelectable(date, now),
		Occupancy:      u.store.Count(date),
		Options:        u.store.AvailableOptions(date, now),
	}
}
