package schedule

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyRequester = errors.New("requester name is empty")

// Reservation is one accepted booking on a day ledger. Requester names are
// unique within a day; the store enforces that on placement.
type Reservation struct {
	id        uuid.UUID
	requester string
	span      Span
	createdAt time.Time
}

func NewReservation(requester string, span Span, now time.Time) (*Reservation, error) {
	name := strings.TrimSpace(requester)
	if name == "" {
		return nil, ErrEmptyRequester
	}
	if span.IsZero() {
		return nil, ErrInvalidSpan
	}

	return &Reservation{
		id:        uuid.New(),
		requester: name,
		span:      span,
		createdAt: now,
	}, nil
}

func ReconstructReservation(id uuid.UUID, requester string, span Span, createdAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		requester: requester,
		span:      span,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Requester() string    { return r.requester }
func (r *Reservation) Span() Span           { return r.span }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
