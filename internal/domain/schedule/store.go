package schedule

import (
	"sync"
	"time"
)

// Store owns every day ledger in the process. All mutation funnels through
// Place under the write lock, so two concurrent accepts for the same date
// cannot overbook it; reads take the read lock and observe a consistent
// ledger snapshot.
type Store struct {
	mu   sync.RWMutex
	days map[string]*DayLedger
}

func NewStore() *Store {
	return &Store{days: make(map[string]*DayLedger)}
}

// Place builds a reservation and appends it to the day's ledger. It is the
// single mutation entry point; there is no update or delete.
func (s *Store) Place(day Day, requester string, span Span, now time.Time) (*Reservation, error) {
	res, err := NewReservation(requester, span, now)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, ok := s.days[day.String()]
	if !ok {
		ledger = NewDayLedger(day)
		s.days[day.String()] = ledger
	}

	if err := ledger.Place(res, now); err != nil {
		return nil, err
	}
	return res, nil
}

// Restore replaces a day's ledger wholesale. Used when loading persisted
// state at startup, never during serving.
func (s *Store) Restore(day Day, reservations []*Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := NewDayLedger(day)
	ledger.reservations = append(ledger.reservations, reservations...)
	s.days[day.String()] = ledger
}

// Reservations returns the day's bookings in insertion order.
func (s *Store) Reservations(day Day) []*Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ledger, ok := s.days[day.String()]
	if !ok {
		return nil
	}
	return ledger.Reservations()
}

// Count is the occupancy indicator: the number of reservations on a day.
func (s *Store) Count(day Day) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ledger, ok := s.days[day.String()]
	if !ok {
		return 0
	}
	return ledger.Len()
}

func (s *Store) ConsumedHours(day Day, now time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledgerOrEmpty(day).ConsumedHours(now)
}

func (s *Store) IsFull(day Day, now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledgerOrEmpty(day).IsFull(now)
}

func (s *Store) AvailableOptions(day Day, now time.Time) []Span {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledgerOrEmpty(day).AvailableOptions(now)
}

func (s *Store) State(day Day, now time.Time) DayState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledgerOrEmpty(day).State(now)
}

func (s *Store) IsSelectable(day Day, now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledgerOrEmpty(day).IsSelectable(now)
}

// ledgerOrEmpty serves read paths for days that have no bookings yet.
// Caller must hold at least the read lock.
func (s *Store) ledgerOrEmpty(day Day) *DayLedger {
	if ledger, ok := s.days[day.String()]; ok {
		return ledger
	}
	return NewDayLedger(day)
}
